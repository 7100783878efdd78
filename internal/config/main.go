package config

import (
	"errors"
	"fmt"

	"gopkg.in/alecthomas/kingpin.v2"
)

var ErrFramePeriod = errors.New("frame period must be positive")

var (
	App = kingpin.New("urchin", "Rhythm judgement in the terminal")

	Play        = App.Command("play", "Play a chart").Default()
	PlayChart   = Play.Arg("chart", "YAML chart file").Required().ExistingFile()
	Replay      = App.Command("replay", "Judge the recorded runs of a chart again")
	ReplayChart = Replay.Arg("chart", "YAML chart file").Required().ExistingFile()
	Check       = App.Command("check", "Validate a chart and print its totals")
	CheckChart  = Check.Arg("chart", "YAML chart file").Required().ExistingFile()

	Difficulty  = App.Flag("difficulty", "Difficulty index, asks when negative").Default("-1").Short('D').Envar("URCHIN_DIFFICULTY").Int()
	Offset      = App.Flag("offset", "Global input offset").Default("0ms").Short('o').Envar("URCHIN_OFFSET").Duration()
	Delay       = App.Flag("delay", "Start delay").Default("1.5s").Short('d').Envar("URCHIN_DELAY").Duration()
	FramePeriod = App.Flag("frame-period", "Tick and render period").Default("1ms").Short('p').Envar("URCHIN_FRAME_PERIOD").Duration()
	SeekStep    = App.Flag("seek-step", "Distance moved by the seek keys").Default("5s").Envar("URCHIN_SEEK_STEP").Duration()

	Critical      = App.Flag("critical", "Justice critical half width").Default("33ms").Envar("URCHIN_CRITICAL").Duration()
	Justice       = App.Flag("justice", "Justice half width").Default("66ms").Envar("URCHIN_JUSTICE").Duration()
	Attack        = App.Flag("attack", "Attack half width").Default("84ms").Envar("URCHIN_ATTACK").Duration()
	AdjustSlider  = App.Flag("adjust-slider", "Lane note timing adjust").Default("0ms").Envar("URCHIN_ADJUST_SLIDER").Duration()
	AdjustAir     = App.Flag("adjust-air", "Air note timing adjust").Default("0ms").Envar("URCHIN_ADJUST_AIR").Duration()
	AirMultiplier = App.Flag("air-multiplier", "Air window multiplier").Default("1").Envar("URCHIN_AIR_MULTIPLIER").Float64()
	AutoAir       = App.Flag("auto-air", "Judge air notes without input").Default("false").Envar("URCHIN_AUTO_AIR").Bool()
	GaugeMax      = App.Flag("gauge-max", "Gauge value of a clean clear").Default("100").Envar("URCHIN_GAUGE_MAX").Float64()
	ProfileFile   = App.Flag("profile", "YAML judge profile, reloaded on change").Short('P').Envar("URCHIN_PROFILE").String()

	Keys      = App.Flag("keys", "Lane keys, left to right").Default("dfjk").Short('k').Envar("URCHIN_KEYS").String()
	AirKeys   = App.Flag("air-keys", "Air up, air down and air action keys").Default("uni").Envar("URCHIN_AIR_KEYS").String()
	HoldGrace = App.Flag("hold-grace", "How long a key counts as held after its last repeat").Default("300ms").Envar("URCHIN_HOLD_GRACE").Duration()
	Silent    = App.Flag("silent", "Disable feedback tones").Short('s').Default("false").Envar("URCHIN_SILENT").Bool()

	Database = App.Flag("db", "Replay database").Default("./replays.db").Envar("URCHIN_DB").String()
	LogLevel = App.Flag("log-level", "Log level").Default("warn").Envar("URCHIN_LOG_LEVEL").Enum("debug", "info", "warn", "error")
	LogFile  = App.Flag("log-file", "Write logs here instead of stderr").Envar("URCHIN_LOG_FILE").String()
)

func init() {
	App.Version("0.3.0")
	App.HelpFlag.Short('h')
}

// Parse reads args into the package flags and returns the selected command.
func Parse(args []string) (string, error) {
	command, err := App.Parse(args)
	if nil != err {
		return command, err
	}
	if *FramePeriod <= 0 {
		return command, fmt.Errorf("--frame-period %v: %w", *FramePeriod, ErrFramePeriod)
	}
	return command, nil
}

// ChartFile returns the chart argument of the selected command.
func ChartFile(command string) string {
	switch command {
	case Replay.FullCommand():
		return *ReplayChart
	case Check.FullCommand():
		return *CheckChart
	}
	return *PlayChart
}
