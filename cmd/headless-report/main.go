package main

import (
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/charmbracelet/log"

	"github.com/esmelusina/AgentFSMExample/internal/config"
	"github.com/esmelusina/AgentFSMExample/internal/game"
	"github.com/esmelusina/AgentFSMExample/internal/logging"
)

const (
	mapW = 1280.0
	mapH = 720.0
)

var scenarios = []string{"orbit", "static", "sweep"}

type runStats struct {
	runIndex int
	seed     int64

	firstAttackTick int
	firstSearchTick int
	firstHealthTick int

	stateChanges int
	hits         int
	pickups      int
	waypoints    int

	totals game.AgentStats
	report game.SimReport
}

func main() {
	var runs int
	var ticks int
	var agents int
	var seedBase int64
	var seedStep int64
	var scenario string
	var logLevel string
	var corrected bool

	flag.IntVar(&runs, "runs", 5, "number of headless simulation runs")
	flag.IntVar(&ticks, "ticks", 3600, "ticks per run")
	flag.IntVar(&agents, "agents", 1, "agents per run")
	flag.Int64Var(&seedBase, "seed-base", 42, "base RNG seed for run 1")
	flag.Int64Var(&seedStep, "seed-step", 1, "seed increment between runs")
	flag.StringVar(&scenario, "scenario", "orbit", "pointer scenario: "+strings.Join(scenarios, ", "))
	flag.StringVar(&logLevel, "log-level", "warn", "log level for run progress")
	flag.BoolVar(&corrected, "corrected-steering", false, "normalise seek steering by its own length")
	flag.Parse()

	logger, err := logging.New(os.Stderr, config.LogConfig{Level: logLevel}, "report")
	if err != nil {
		log.Fatal("init logger", "err", err)
	}
	if runs <= 0 {
		logger.Fatal("-runs must be > 0", "runs", runs)
	}
	if ticks <= 0 {
		logger.Fatal("-ticks must be > 0", "ticks", ticks)
	}
	if agents <= 0 {
		logger.Fatal("-agents must be > 0", "agents", agents)
	}
	if !validScenario(scenario) {
		logger.Fatal("unsupported scenario", "scenario", scenario, "supported", strings.Join(scenarios, ", "))
	}

	fmt.Printf("=== Headless Agent Report ===\n")
	fmt.Printf("scenario=%s runs=%d ticks=%d agents=%d seed_base=%d seed_step=%d corrected=%v\n\n",
		scenario, runs, ticks, agents, seedBase, seedStep, corrected)

	tuning := game.DefaultTuning()
	tuning.CorrectedSteering = corrected

	all := make([]runStats, 0, runs)
	for i := 0; i < runs; i++ {
		seed := seedBase + int64(i)*seedStep
		logger.Info("run start", "run", i+1, "seed", seed)
		stats := runScenario(i+1, seed, ticks, agents, scenario, tuning)
		all = append(all, stats)
		printRun(stats)
	}

	printAggregate(all)
}

func validScenario(name string) bool {
	for _, s := range scenarios {
		if s == name {
			return true
		}
	}
	return false
}

// scenarioOptions returns the pointer setup for a named scenario.
func scenarioOptions(name string) []game.SimOption {
	switch name {
	case "static":
		// Parked on the top edge of the patrol loop.
		return []game.SimOption{game.WithStaticPointer(mapW/2, 200)}
	case "sweep":
		return []game.SimOption{game.WithScriptedPointer(
			game.PointerKey{From: 0, X: 200, Y: 200},
			game.PointerKey{From: 600, X: mapW - 200, Y: 200},
			game.PointerKey{From: 1200, X: -5000, Y: -5000},
			game.PointerKey{From: 1800, X: mapW - 200, Y: mapH - 200},
			game.PointerKey{From: 2400, X: -5000, Y: -5000},
		)}
	default:
		return []game.SimOption{game.WithPointer(&game.OrbitPointer{
			CX: mapW / 2, CY: mapH / 2, Radius: 260, Period: 900,
		})}
	}
}

func runScenario(runIndex int, seed int64, ticks, agents int, scenario string, tuning game.Tuning) runStats {
	opts := []game.SimOption{
		game.WithMapSize(mapW, mapH),
		game.WithSeed(seed),
		game.WithTuning(tuning),
		game.WithPickup(mapW/2, mapH/2),
	}
	opts = append(opts, scenarioOptions(scenario)...)
	for i := 0; i < agents; i++ {
		opts = append(opts, game.WithAgent(fmt.Sprintf("A%d", i), 100+float64(i)*40, 100))
	}

	ts := game.NewTestSim(opts...)
	ts.RunTicks(ticks)

	entries := ts.SimLog.Entries()
	report := game.BuildReport(ts.CurrentTick(), ts.Agents())
	return runStats{
		runIndex:        runIndex,
		seed:            seed,
		firstAttackTick: firstTick(entries, "state", "change", "→ attack"),
		firstSearchTick: firstTick(entries, "state", "change", "→ search"),
		firstHealthTick: firstTick(entries, "state", "change", "→ health"),
		stateChanges:    ts.SimLog.CountCategory("state", "change"),
		hits:            ts.SimLog.CountCategory("health", "damage"),
		pickups:         ts.SimLog.CountCategory("health", "restore"),
		waypoints:       ts.SimLog.CountCategory("patrol", "advance"),
		totals:          report.Totals(),
		report:          report,
	}
}

func firstTick(entries []game.SimLogEntry, category, key, contains string) int {
	for _, e := range entries {
		if e.Category != category || e.Key != key {
			continue
		}
		if contains == "" || strings.Contains(e.Value, contains) {
			return e.Tick
		}
	}
	return -1
}

// classifyRun names the dominant behaviour of a run.
func classifyRun(rs runStats) string {
	t := rs.totals
	switch {
	case t.Ticks == 0:
		return "empty"
	case rs.firstAttackTick < 0:
		return "unengaged"
	case t.Share(game.StateHealth) > 0.3:
		return "attrition"
	case t.Share(game.StateAttack) > 0.5:
		return "pursuit"
	default:
		return "mixed"
	}
}

func printRun(rs runStats) {
	fmt.Printf("--- Run %d (seed=%d) ---\n", rs.runIndex, rs.seed)
	fmt.Printf("phase_markers: first_attack=%d first_search=%d first_health=%d\n",
		rs.firstAttackTick, rs.firstSearchTick, rs.firstHealthTick)
	fmt.Printf("event_totals: state_change=%d damage=%d restore=%d waypoint=%d\n",
		rs.stateChanges, rs.hits, rs.pickups, rs.waypoints)
	fmt.Printf("state_share: %s\n", shareString(rs.totals))
	fmt.Printf("classification: %s\n", classifyRun(rs))
	fmt.Print(rs.report.Format())
	fmt.Println()
}

func printAggregate(all []runStats) {
	var total game.AgentStats
	totalState, totalHits, totalPickups, totalWaypoints := 0, 0, 0, 0
	attackTicks := make([]int, 0, len(all))
	healthTicks := make([]int, 0, len(all))
	classes := map[string]int{}

	for _, rs := range all {
		total.Ticks += rs.totals.Ticks
		for st := range total.StateTicks {
			total.StateTicks[st] += rs.totals.StateTicks[st]
		}
		totalState += rs.stateChanges
		totalHits += rs.hits
		totalPickups += rs.pickups
		totalWaypoints += rs.waypoints
		if rs.firstAttackTick >= 0 {
			attackTicks = append(attackTicks, rs.firstAttackTick)
		}
		if rs.firstHealthTick >= 0 {
			healthTicks = append(healthTicks, rs.firstHealthTick)
		}
		classes[classifyRun(rs)]++
	}

	fmt.Println("=== Aggregate ===")
	fmt.Printf("runs=%d\n", len(all))
	fmt.Printf("avg_events_per_run: state_change=%.1f damage=%.1f restore=%.1f waypoint=%.1f\n",
		avg(totalState, len(all)), avg(totalHits, len(all)), avg(totalPickups, len(all)), avg(totalWaypoints, len(all)))
	fmt.Printf("phase_marker_avg_ticks: first_attack=%s first_health=%s\n",
		avgTickString(attackTicks), avgTickString(healthTicks))
	fmt.Printf("state_share: %s\n", shareString(total))
	fmt.Printf("classifications: %s\n", classString(classes))
}

func shareString(t game.AgentStats) string {
	parts := make([]string, 0, 4)
	for _, st := range []game.AgentState{game.StatePatrol, game.StateAttack, game.StateSearch, game.StateHealth} {
		parts = append(parts, fmt.Sprintf("%s=%.1f%%", st, t.Share(st)*100))
	}
	return strings.Join(parts, " ")
}

func classString(classes map[string]int) string {
	if len(classes) == 0 {
		return "none"
	}
	var parts []string
	for _, name := range []string{"unengaged", "pursuit", "attrition", "mixed", "empty"} {
		if n := classes[name]; n > 0 {
			parts = append(parts, fmt.Sprintf("%s=%d", name, n))
		}
	}
	return strings.Join(parts, " ")
}

func avg(sum int, n int) float64 {
	if n <= 0 {
		return 0
	}
	return float64(sum) / float64(n)
}

func avgTickString(vals []int) string {
	if len(vals) == 0 {
		return "n/a"
	}
	sum := 0
	for _, v := range vals {
		sum += v
	}
	return fmt.Sprintf("%.1f", float64(sum)/float64(len(vals)))
}
