// Command graphroute runs the graph algorithms of this module against
// YAML scenario files: environment overview, minimum spanning trees,
// and shortest-path queries. Diagnostic output goes through logrus;
// results print to stdout.
package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/antonkuklin/graphroute/dijkstra"
	"github.com/antonkuklin/graphroute/mst"
	"github.com/antonkuklin/graphroute/routing"
)

var log = logrus.New()

func main() {
	if err := newRootCmd().Execute(); err != nil {
		log.WithError(err).Fatal("command failed")
	}
}

type rootFlags struct {
	scenario string
	verbose  bool
}

func newRootCmd() *cobra.Command {
	flags := &rootFlags{}

	root := &cobra.Command{
		Use:           "graphroute",
		Short:         "Minimum spanning trees and shortest paths over YAML scenarios",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			log.SetFormatter(&logrus.TextFormatter{DisableTimestamp: true})
			if flags.verbose {
				log.SetLevel(logrus.DebugLevel)
			}
		},
	}

	root.PersistentFlags().StringVarP(&flags.scenario, "scenario", "f", "", "path to the YAML scenario file")
	root.PersistentFlags().BoolVarP(&flags.verbose, "verbose", "v", false, "enable debug logging")
	_ = root.MarkPersistentFlagRequired("scenario")

	root.AddCommand(newShowCmd(flags), newMSTCmd(flags), newPathCmd(flags))

	return root
}

// loadEnvironment opens and decodes the scenario file.
func loadEnvironment(path string) (*routing.Environment, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open scenario: %w", err)
	}
	defer f.Close()

	env, err := routing.LoadScenario(f)
	if err != nil {
		return nil, err
	}

	log.WithFields(logrus.Fields{
		"routes":    len(env.Routes()),
		"obstacles": len(env.Obstacles()),
	}).Debug("scenario loaded")

	return env, nil
}

func newShowCmd(flags *rootFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Print an overview of the scenario environment",
		RunE: func(cmd *cobra.Command, args []string) error {
			env, err := loadEnvironment(flags.scenario)
			if err != nil {
				return err
			}

			env.Describe(cmd.OutOrStdout())
			log.WithField("vertices", env.Graph().VertexCount()).Debug("environment graph")

			return nil
		},
	}
}

func newMSTCmd(flags *rootFlags) *cobra.Command {
	var method string

	cmd := &cobra.Command{
		Use:   "mst",
		Short: "Compute a minimum spanning tree of the scenario graph",
		RunE: func(cmd *cobra.Command, args []string) error {
			env, err := loadEnvironment(flags.scenario)
			if err != nil {
				return err
			}

			g := env.Graph()
			edges, total, err := mst.Compute(g, mst.WithMethod(method))
			if err != nil {
				return err
			}

			log.WithFields(logrus.Fields{
				"method":   method,
				"vertices": g.VertexCount(),
				"edges":    len(edges),
			}).Debug("mst computed")

			if g.Directed() {
				log.Warn("scenario routes are directed; MST is not applicable")
			}

			out := cmd.OutOrStdout()
			for _, e := range edges {
				fmt.Fprintf(out, "%s - %s (%d km)\n", e.From, e.To, e.Weight)
			}
			fmt.Fprintf(out, "Total weight: %d km\n", total)

			return nil
		},
	}

	cmd.Flags().StringVarP(&method, "method", "m", mst.MethodKruskal,
		fmt.Sprintf("algorithm: %s, %s or %s", mst.MethodPrim, mst.MethodKruskal, mst.MethodBoruvka))

	return cmd
}

func newPathCmd(flags *rootFlags) *cobra.Command {
	var from, to string

	cmd := &cobra.Command{
		Use:   "path",
		Short: "Find the shortest route between two points",
		RunE: func(cmd *cobra.Command, args []string) error {
			env, err := loadEnvironment(flags.scenario)
			if err != nil {
				return err
			}

			path, total, err := routing.FindOptimalRoute(env, from, to, nil)
			if err != nil {
				return err
			}

			if total == dijkstra.CostUnreachable {
				log.WithFields(logrus.Fields{"from": from, "to": to}).Warn("no route exists")
				fmt.Fprintln(cmd.OutOrStdout(), "no route")

				return nil
			}

			fmt.Fprintf(cmd.OutOrStdout(), "%s (%d km)\n", strings.Join(path, " -> "), total)

			return nil
		},
	}

	cmd.Flags().StringVar(&from, "from", "", "starting point name")
	cmd.Flags().StringVar(&to, "to", "", "destination point name")
	_ = cmd.MarkFlagRequired("from")
	_ = cmd.MarkFlagRequired("to")

	return cmd
}
