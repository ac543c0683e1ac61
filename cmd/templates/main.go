package main

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	flags "github.com/jessevdk/go-flags"
	"github.com/massn/envordot"
	"github.com/oklog/run"

	"github.com/oqtopus-team/template-engine/common"
	"github.com/oqtopus-team/template-engine/core"
	tmpllog "github.com/oqtopus-team/template-engine/log"
	"github.com/oqtopus-team/template-engine/scheduler"
	"github.com/oqtopus-team/template-engine/templates"

	"go.uber.org/dig"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	rotate "github.com/lestrrat-go/file-rotatelogs"
)

var versionByBuildFlag string
var parser *flags.Parser
var engine *Engine

const metricsLogInterval = 10 * time.Second

func init() {
	if err := envordot.Load(false, ".env"); err != nil {
		fmt.Printf("Not found \".env\" file. Use only environment variables. Reason:%s\n", err.Error())
	} else {
		fmt.Println("Found \".env\" file. Environment variables are preferred, " +
			"but non-conflicting variables are those in the \".env\" file.")
	}
	engine = &Engine{}
	setParser(engine)
}

type Engine struct {
	DIContainerParameters *DIContainerParameters
	Conf                  *core.Conf
}

type DIContainerParameters struct {
	Executor string `long:"executor" description:"executor-type" default:"stdout" choice:"stdout" choice:"mock" env:"QIQB_TMPL_EXECUTOR_TYPE"`
}

func setParser(engine *Engine) {
	parser = flags.NewParser(engine, flags.Default)
	parser.ShortDescription = "qiqb template engine"
	parser.LongDescription = "builds gate-operation programs from quantum circuit templates."
	parser.AddCommand("emit", "emit one program", "build the template request file and print the program", newEmitCmd())
	parser.AddCommand("serve", "start build worker", "read request file paths from stdin and build them through the queue", newServeCmd())
}

func parse() {
	if _, err := parser.Parse(); err != nil {
		code := 1
		if fe, ok := err.(*flags.Error); ok {
			if fe.Type == flags.ErrHelp {
				code = 0
			}
		}
		if code == 1 {
			fmt.Printf("failed to pasre flags, because %s\n", err)
		}
		os.Exit(code)
	}
}

func (e *Engine) provideDIContainer() (c *dig.Container, err error) {
	c = dig.New()
	err = c.Provide(func() (core.Executor, error) {
		switch e.DIContainerParameters.Executor {
		case "stdout":
			return &core.StdoutExecutor{}, nil
		case "mock":
			return &core.MockExecutor{}, nil
		default:
			return &core.StdoutExecutor{}, fmt.Errorf("%s is an unknown Executor", e.DIContainerParameters.Executor)
		}
	})
	if err != nil {
		return &dig.Container{}, err
	}
	err = c.Provide(func(executor core.Executor) (*scheduler.NormalScheduler, error) {
		s := &scheduler.NormalScheduler{}
		if err := s.Setup(e.Conf, executor); err != nil {
			return nil, err
		}
		return s, nil
	})
	if err != nil {
		return &dig.Container{}, err
	}
	return
}

func zapLogger(conf *core.Conf) (*zap.Logger, error) {
	var encoder zapcore.Encoder
	if conf.DevMode {
		encoder = zapcore.NewConsoleEncoder(zap.NewDevelopmentEncoderConfig())
	} else {
		c := zap.NewProductionEncoderConfig()
		c.EncodeTime = zapcore.ISO8601TimeEncoder //Not use UnixTime
		c.TimeKey = "timestamp"
		encoder = zapcore.NewJSONEncoder(c)
	}
	var level zap.AtomicLevel
	switch conf.LogLevel {
	case "debug":
		level = zap.NewAtomicLevelAt(zap.DebugLevel)
	case "warn":
		level = zap.NewAtomicLevelAt(zap.WarnLevel)
	case "error":
		level = zap.NewAtomicLevelAt(zap.ErrorLevel)
	default:
		level = zap.NewAtomicLevelAt(zap.InfoLevel)
	}

	cores := []zapcore.Core{}
	if conf.EnableFileLog {
		rotater, err := makeRotator(conf.LogDir, conf.LogRotationMaxDays)
		if err != nil {
			return &zap.Logger{}, err
		}
		syncer := zapcore.AddSync(rotater)
		rotateCore := zapcore.NewCore(
			encoder,
			syncer,
			level)
		cores = append(cores, rotateCore)
	}
	if !conf.DisableStdoutLog {
		debugCore := zapcore.NewCore(
			encoder,
			zapcore.Lock(os.Stdout),
			level)
		cores = append(cores, debugCore)
	}
	core := zapcore.NewTee(cores...)
	return zap.New(core, zap.AddCaller()), nil
}

func makeRotator(dirPath string, rotationMaxDays int) (*rotate.RotateLogs, error) {
	info, err := os.Stat(dirPath)
	if err != nil {
		return &rotate.RotateLogs{}, fmt.Errorf("directory:%s is not found", dirPath)
	}
	if info.Mode().Perm()&(1<<uint(7)) == 0 {
		return &rotate.RotateLogs{}, fmt.Errorf("%s is not a writable directory", dirPath)
	}
	rotator, err := rotate.New(
		filepath.Join(dirPath, "qiqbtmpl-%Y-%m-%d.log"),
		rotate.WithMaxAge(time.Duration(rotationMaxDays)*24*time.Hour),
		rotate.WithRotationTime(time.Hour))
	if err != nil {
		return &rotate.RotateLogs{}, err
	}
	return rotator, nil
}

func main() {
	parse()
}

func setUpSettings(conf *core.Conf) {
	core.ResetSetting()
	core.RegisterSetting(core.INTERFEROMETER_TEMPLATE, core.NewInterferometerSetting())
	if err := core.ParseSettingFromPath(conf.SettingPath); err != nil {
		zap.L().Info(fmt.Sprintf("no usable setting file. use defaults/reason:%s", err))
	}
}

type emitCmd struct {
	Request string `long:"request" short:"r" description:"template request file path" required:"true"`
}

func newEmitCmd() *emitCmd {
	return &emitCmd{}
}

func (c *emitCmd) Execute(args []string) error {
	logger := setZap(engine.Conf)
	defer logger.Sync()

	core.SetVersion(engine.Conf, versionByBuildFlag)
	core.SetInfo(engine.Conf)
	setUpSettings(engine.Conf)

	tomlString, err := common.ReadFile(c.Request)
	if err != nil {
		zap.L().Error(fmt.Sprintf("failed to read request file/path:%s/reason:%s", c.Request, err))
		return err
	}
	req, err := core.DecodeTemplateRequest(tomlString)
	if err != nil {
		return err
	}
	prog, err := templates.BuildFromRequest(req)
	if err != nil {
		return err
	}

	container, err := engine.provideDIContainer()
	if err != nil {
		zap.L().Error(fmt.Sprintf("Failed to setting up DI-Container. Reason:%s", err.Error()))
		return err
	}
	return container.Invoke(func(executor core.Executor) error {
		return executor.Execute(prog)
	})
}

type serveCmd struct{}

func newServeCmd() *serveCmd {
	return &serveCmd{}
}

func (c *serveCmd) Execute(args []string) error {
	logger := setZap(engine.Conf)
	defer logger.Sync()

	core.SetVersion(engine.Conf, versionByBuildFlag)
	core.SetInfo(engine.Conf)
	setUpSettings(engine.Conf)

	container, err := engine.provideDIContainer()
	if err != nil {
		zap.L().Error(fmt.Sprintf("Failed to setting up DI-Container. Reason:%s", err.Error()))
		return err
	}
	return container.Invoke(func(sched *scheduler.NormalScheduler) error {
		if err := sched.Start(); err != nil {
			return err
		}
		defer sched.TearDown()

		metrics, err := tmpllog.NewMetricsLogger(engine.Conf.MetricsLogDir, metricsLogInterval, sched)
		if err != nil {
			zap.L().Error(fmt.Sprintf("Failed to setup metrics logger. Reason:%s", err))
			return err
		}

		var g run.Group
		g.Add(metrics.Run, func(error) { metrics.Stop() })
		g.Add(func() error {
			return readRequests(os.Stdin, sched)
		}, func(error) {
			os.Stdin.Close()
		})
		g.Add(run.SignalHandler(context.Background(), os.Interrupt))

		if err := g.Run(); err != nil {
			if _, ok := err.(run.SignalError); ok {
				zap.L().Info(fmt.Sprintf("stopped by signal: %s", err))
				return nil
			}
			return err
		}
		return nil
	})
}

func readRequests(in *os.File, sched *scheduler.NormalScheduler) error {
	scanner := bufio.NewScanner(in)
	for scanner.Scan() {
		path := scanner.Text()
		if path == "" {
			continue
		}
		tomlString, err := common.ReadFile(path)
		if err != nil {
			zap.L().Info(fmt.Sprintf("failed to read request file/path:%s/reason:%s", path, err))
			continue
		}
		req, err := core.DecodeTemplateRequest(tomlString)
		if err != nil {
			continue
		}
		id := sched.HandleRequest(req)
		zap.L().Debug(fmt.Sprintf("queued request(%s) from %s", id, path))
	}
	return scanner.Err()
}

func setZap(conf *core.Conf) *zap.Logger {
	logger, err := zapLogger(conf)
	if err != nil {
		fmt.Printf("Failed to setup logger. Reason:%s\n", err)
		panic(err)
	}
	zap.ReplaceGlobals(logger)
	zap.L().Info("Starting logger")
	zap.L().Info(fmt.Sprintf("DevMode is %t", conf.DevMode))
	zap.L().Info(fmt.Sprintf("Log rotation max days is %d", conf.LogRotationMaxDays))
	return logger
}
