package main

import (
	"fmt"
	"io"
	"strings"
	"time"

	jsoniter "github.com/json-iterator/go"
	"github.com/pkg/errors"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/valvenet/bfs"
	"github.com/katalvlaran/valvenet/compact"
	"github.com/katalvlaran/valvenet/explore"
	"github.com/katalvlaran/valvenet/network"
	"github.com/katalvlaran/valvenet/pressure"
)

const (
	formatText = "text"
	formatJSON = "json"
)

var qjson = jsoniter.ConfigCompatibleWithStandardLibrary

// Solution is one timed answer.
type Solution struct {
	Minutes  int     `json:"minutes"`
	Solution int     `json:"solution"`
	Elapsed  float64 `json:"elapsed_seconds"`
}

// Report is what the command prints.
type Report struct {
	PartOne Solution `json:"part_one"`
	PartTwo Solution `json:"part_two"`
}

func run(cmd *cobra.Command, o *options, path string) error {
	log, err := newLogger(cmd.ErrOrStderr(), o.logLevel)
	if err != nil {
		return err
	}
	if o.format != formatText && o.format != formatJSON {
		return errors.Errorf("unknown output format %q", o.format)
	}

	log.Info().Str("path", path).Msg("Opening input")
	n, err := readNetwork(cmd.InOrStdin(), path)
	if err != nil {
		return errors.Wrapf(err, "load %s", path)
	}
	log.Info().
		Int("valves", n.Len()).
		Int("flow_valves", len(n.FlowValves())).
		Int("tunnels", n.EdgeCount()).
		Msg("Network loaded")

	if err := checkReachability(&log, n); err != nil {
		return err
	}

	var rep Report
	rep.PartOne, err = timeSolve(&log, "one", o.singleMinutes, func(opts ...pressure.Option) (int, error) {
		return pressure.SolveSingle(n, o.singleMinutes, opts...)
	}, compactionHooks(&log, n)...)
	if err != nil {
		return errors.Wrap(err, "part one")
	}
	rep.PartTwo, err = timeSolve(&log, "two", o.dualMinutes, func(opts ...pressure.Option) (int, error) {
		return pressure.SolveDual(n, o.dualMinutes, opts...)
	})
	if err != nil {
		return errors.Wrap(err, "part two")
	}

	return writeReport(cmd.OutOrStdout(), o.format, rep)
}

func readNetwork(stdin io.Reader, path string) (*network.Network, error) {
	if path == "-" {
		return network.Parse(stdin)
	}

	return network.ParseFile(path)
}

// checkReachability warns about flow valves no tunnel path leads to. They are
// not an error; the search simply never opens them. At debug level it also
// logs the fewest-hop route to every reachable flow valve.
func checkReachability(log *zerolog.Logger, n *network.Network) error {
	res, err := bfs.BFS(n, n.Start())
	if err != nil {
		return errors.Wrap(err, "reachability")
	}
	var unreachable []string
	for _, v := range n.FlowValves() {
		if !res.Reached(v) {
			unreachable = append(unreachable, n.Label(v))
			continue
		}
		if e := log.Debug(); e.Enabled() {
			path, err := res.PathTo(v)
			if err != nil {
				return errors.Wrap(err, "reachability")
			}
			route := make([]string, len(path))
			for i, u := range path {
				route[i] = n.Label(u)
			}
			e.Str("valve", n.Label(v)).Int("hops", res.Depth[v]).Str("route", strings.Join(route, "-")).Msg("Route")
		}
	}
	if len(unreachable) > 0 {
		log.Warn().Strs("valves", unreachable).Msg("Flow valves unreachable from start")
	}

	return nil
}

// compactionHooks report, at debug level, which rooms compaction removes and
// what is left. Only one part logs them; both compact the same network.
func compactionHooks(log *zerolog.Logger, n *network.Network) []pressure.Option {
	if log.GetLevel() > zerolog.DebugLevel {
		return nil
	}

	return []pressure.Option{
		pressure.WithCompact(compact.WithOnEliminate(func(label string, degree int) {
			log.Trace().Str("valve", label).Int("degree", degree).Msg("Eliminated")
		})),
		pressure.WithOnCompacted(func(c *network.Network) {
			log.Debug().
				Int("valves", c.Len()).
				Int("tunnels", c.EdgeCount()).
				Int("removed", n.Len()-c.Len()).
				Msg("Network compacted")
		}),
	}
}

// timeSolve runs solve with counting hooks and measures its wall-clock time.
func timeSolve(log *zerolog.Logger, part string, minutes int, solve func(...pressure.Option) (int, error), extra ...pressure.Option) (Solution, error) {
	var expanded, pruned int
	hooks := append([]pressure.Option{pressure.WithExplore(
		explore.WithOnVisit(func(explore.State) { expanded++ }),
		explore.WithOnPrune(func(explore.State) { pruned++ }),
	)}, extra...)

	start := time.Now()
	result, err := solve(hooks...)
	elapsed := time.Since(start)
	if err != nil {
		return Solution{}, err
	}
	log.Debug().
		Str("part", part).
		Int("minutes", minutes).
		Int("expanded", expanded).
		Int("pruned", pruned).
		Dur("elapsed", elapsed).
		Msg("Search finished")

	return Solution{Minutes: minutes, Solution: result, Elapsed: elapsed.Seconds()}, nil
}

func writeReport(w io.Writer, format string, rep Report) error {
	if format == formatJSON {
		enc := qjson.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(rep)
	}
	for _, p := range []struct {
		name string
		sol  Solution
	}{{"Part one", rep.PartOne}, {"Part two", rep.PartTwo}} {
		if _, err := fmt.Fprintf(w, "%s:\n  Solution: %d\n  Elapsed:  %g seconds\n", p.name, p.sol.Solution, p.sol.Elapsed); err != nil {
			return err
		}
	}

	return nil
}
