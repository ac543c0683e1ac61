package core

type Conf struct {
	Version              string `long:"version" description:"vesion of template engine" env:"QIQB_TMPL_VERSION"`
	DevMode              bool   `long:"dev-mode" description:"run in dev mode" env:"QIQB_TMPL_DEV_MODE"`
	DisableStdoutLog     bool   `long:"disable-stdout-log" description:"do not log in standard output" env:"QIQB_TMPL_DISABLE_STDOUT_LOG"`
	EnableFileLog        bool   `long:"enable-file-log" description:"enable log in file" env:"QIQB_TMPL_ENABLE_FILE_LOG"`
	LogDir               string `long:"log-dir" description:"rotating log file dir" default:"./shares/logs" env:"QIQB_TMPL_LOG_DIR"`
	LogLevel             string `long:"log-level" description:"log level" default:"info" choice:"debug" choice:"info" choice:"warn" choice:"error" env:"QIQB_TMPL_LOG_LEVEL"`
	LogRotationMaxDays   int    `long:"log-rotation-max-days" description:"max days of log rotation" default:"7" env:"QIQB_TMPL_LOG_ROTATION_MAX_DAYS"`
	MetricsLogDir        string `long:"metrics-log-dir" description:"metrics log file dir" default:"./shares/logs" env:"QIQB_TMPL_METRICS_LOG_DIR"`
	QueueMaxSize         int    `long:"queue-max-size" description:"queue max size" default:"100" env:"QIQB_TMPL_QUEUE_MAX_SIZE"`
	QueueRefillThreshold int    `long:"queue-refill-threshold" description:"queue refill threshold" default:"10" env:"QIQB_TMPL_QUEUE_REFILL_THRESHOLD"`
	SettingPath          string `long:"setting-path" description:"setting file path" default:"./setting/setting.toml" env:"QIQB_TMPL_SETTING_PATH"`
}
