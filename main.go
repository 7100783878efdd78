package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"runtime"
	"strconv"

	"git.lost.host/meutraa/urchin/internal/config"
	"git.lost.host/meutraa/urchin/internal/feedback"
	"git.lost.host/meutraa/urchin/internal/game"
	"git.lost.host/meutraa/urchin/internal/input"
	"git.lost.host/meutraa/urchin/internal/judge"
	"git.lost.host/meutraa/urchin/internal/parser"
	"git.lost.host/meutraa/urchin/internal/render"
	"git.lost.host/meutraa/urchin/internal/replay"
	"git.lost.host/meutraa/urchin/internal/score"
	"git.lost.host/meutraa/urchin/internal/theme"
	"github.com/charmbracelet/log"
	"github.com/eiannone/keyboard"
	_ "github.com/joho/godotenv/autoload"
	"golang.org/x/sync/errgroup"
)

func main() {
	command, err := config.Parse(os.Args[1:])
	if nil != err {
		config.App.FatalUsage("%v\n", err)
	}

	logger, closeLog, err := newLogger()
	if nil != err {
		log.Fatal("unable to open log", "err", err)
	}
	defer closeLog()

	switch command {
	case config.Check.FullCommand():
		err = check(os.Stdout, config.ChartFile(command))
	case config.Replay.FullCommand():
		err = replays(os.Stdout, config.ChartFile(command), logger)
	default:
		err = play(config.ChartFile(command), logger)
	}
	if nil != err {
		closeLog()
		log.Fatal(err)
	}
}

func newLogger() (*log.Logger, func(), error) {
	var out io.Writer = os.Stderr
	closeLog := func() {}
	if "" != *config.LogFile {
		f, err := os.OpenFile(*config.LogFile, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
		if nil != err {
			return nil, nil, err
		}
		out, closeLog = f, func() { f.Close() }
	}

	level, err := log.ParseLevel(*config.LogLevel)
	if nil != err {
		return nil, nil, err
	}
	logger := log.NewWithOptions(out, log.Options{
		ReportTimestamp: true,
		Level:           level,
		Prefix:          "urchin",
	})
	return logger, closeLog, nil
}

func loadCharts(file string) ([]*game.Chart, error) {
	var psr parser.Parser = &parser.DefaultParser{}
	return psr.Parse(file)
}

// selectChart picks the difficulty from the flag, or asks when there is
// more than one and no flag was given.
func selectChart(charts []*game.Chart, keys <-chan keyboard.KeyEvent) (*game.Chart, error) {
	index := *config.Difficulty
	if index < 0 && len(charts) == 1 {
		index = 0
	}
	if index < 0 {
		if nil == keys {
			return nil, errors.New("more than one difficulty, choose one with --difficulty")
		}
		for i, c := range charts {
			fmt.Printf("%2v) %3v  %5v  %v\r\n", i, c.Difficulty.Level, c.Total(), c.Difficulty.Name)
		}
		key := <-keys
		i, err := strconv.Atoi(string(key.Rune))
		if nil != err {
			return nil, fmt.Errorf("not a difficulty: %q", key.Rune)
		}
		index = i
	}
	if index >= len(charts) {
		return nil, fmt.Errorf("no difficulty %d, the chart has %d", index, len(charts))
	}
	return charts[index], nil
}

func play(file string, logger *log.Logger) error {
	charts, err := loadCharts(file)
	if nil != err {
		return err
	}

	keys, err := keyboard.GetKeys(128)
	if nil != err {
		return fmt.Errorf("unable to open keyboard: %w", err)
	}
	defer func() {
		if err := keyboard.Close(); nil != err {
			logger.Warn("unable to close keyboard", "err", err)
		}
	}()

	chart, err := selectChart(charts, keys)
	if nil != err {
		return err
	}

	kb, err := input.NewKeyboard(keys, *config.Keys, *config.AirKeys, config.HoldGrace.Seconds())
	if nil != err {
		return err
	}

	profile := config.FlagProfile()
	if "" != *config.ProfileFile {
		if profile, err = config.LoadProfile(*config.ProfileFile, profile); nil != err {
			return err
		}
	}

	r := render.NewRenderer(os.Stdout, int(os.Stdout.Fd()), &theme.DefaultTheme{})
	if !r.IsTerminal() {
		logger.Warn("stdout is not a terminal, drawing at the default size")
	}
	sinks := feedback.Tee{r}
	if !*config.Silent {
		b := feedback.NewBeep()
		if err := b.Init(); nil != err {
			logger.Warn("unable to open audio, playing silently", "err", err)
		} else {
			sinks = append(sinks, b)
		}
	}
	if logger.GetLevel() <= log.DebugLevel {
		sinks = append(sinks, feedback.Log{Logger: logger.WithPrefix("feedback")})
	}

	opts := append(profile.Options(), judge.WithLogger(logger.WithPrefix("judge")))
	p := &Program{
		Renderer: r,
		Judge:    judge.New(sinks, opts...),
		Keyboard: kb,
		Logger:   logger,
	}

	if store, err := replay.Open(*config.Database, logger.WithPrefix("replay")); nil != err {
		logger.Warn("replays will not be saved", "err", err)
	} else {
		defer store.Close()
		p.Store = store
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	g, ctx := errgroup.WithContext(ctx)

	profiles := make(chan config.Profile, 1)
	if "" != *config.ProfileFile {
		g.Go(func() error {
			return config.Watch(ctx, *config.ProfileFile, config.FlagProfile(), profiles, logger.WithPrefix("profile"))
		})
	}

	p.Init(file, chart, profile, profiles)
	g.Go(func() error {
		defer cancel()
		return p.Run(ctx)
	})
	if err := g.Wait(); nil != err {
		return err
	}

	p.Save()
	printStatus(os.Stdout, p.Judge.Status())
	return nil
}

func printStatus(w io.Writer, s score.Status) {
	for _, tier := range []game.Tier{game.JusticeCritical, game.Justice, game.Attack, game.Miss} {
		fmt.Fprintf(w, "%17v:  %6v\n", tier, s.Count(tier))
	}
	fmt.Fprintf(w, "%17v:  %6v\n", "Max Combo", s.MaxCombo)
	fmt.Fprintf(w, "%17v:  %6.2f / %v\n", "Gauge", s.CurrentGauge, s.GaugeMax)
	fmt.Fprintf(w, "%17v:  %5.2f%%\n", "Accuracy", 100*s.Accuracy())
}

func check(w io.Writer, file string) error {
	charts, err := loadCharts(file)
	if nil != err {
		return err
	}
	for i, c := range charts {
		fmt.Fprintf(w, "%2v) %-12v %3v  notes %5v  holds %4v  slides %4v  hazards %4v  judgements %5v  length %7.2fs\n",
			i, c.Difficulty.Name, c.Difficulty.Level,
			c.NoteCount, c.HoldCount, c.SlideCount, c.HellCount, c.Total(), c.Length())
	}
	return nil
}

func replays(w io.Writer, file string, logger *log.Logger) error {
	charts, err := loadCharts(file)
	if nil != err {
		return err
	}
	chart, err := selectChart(charts, nil)
	if nil != err {
		return err
	}

	store, err := replay.Open(*config.Database, logger.WithPrefix("replay"))
	if nil != err {
		return err
	}
	defer store.Close()

	histories, err := store.Load(chart)
	if nil != err {
		return err
	}
	if len(histories) == 0 {
		fmt.Fprintln(w, "no recorded runs of", chart.Difficulty.Name)
		return nil
	}

	// Every run judges its own copy of the chart
	results := make([]score.Status, len(histories))
	var g errgroup.Group
	g.SetLimit(runtime.NumCPU())
	for i, h := range histories {
		g.Go(func() error {
			results[i] = replay.Evaluate(chart, h, config.FramePeriod.Seconds())
			return nil
		})
	}
	g.Wait()

	for i, h := range histories {
		s := results[i]
		fmt.Fprintf(w, "%v  %v  JC %5v  J %5v  A %5v  M %5v  combo %5v  %6.2f%%\n",
			h.PlayedAt.Format("2006-01-02 15:04"), h.ID,
			s.JusticeCritical, s.Justice, s.Attack, s.Miss, s.MaxCombo, 100*s.Accuracy())
	}
	return nil
}
