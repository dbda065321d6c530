package config

// Log configures the process logger
type Log struct {
	Level      int    `envconfig:"LEVEL" default:"0" validate:"min=-4,max=12"`
	Format     string `envconfig:"FORMAT" default:"text" validate:"oneof=json text"`
	TimeFormat string `envconfig:"TIME_FORMAT" default:"2006-01-02 15:04:05"`
	Prefix     string `envconfig:"PREFIX" default:"[patterns]"`
}

// Demo configures the scenario runner
type Demo struct {
	Payload          string `envconfig:"PAYLOAD" default:"Test Data"`
	ChainLength      int    `envconfig:"CHAIN_LENGTH" default:"3" validate:"min=1,max=100"`
	NotificationKind string `envconfig:"NOTIFICATION_KIND" default:"sms"`
	Statement        string `envconfig:"STATEMENT" default:"Hi there"`
	Color            string `envconfig:"COLOR" default:"auto" validate:"oneof=auto always never"`
}

// App is the root configuration, read from PATTERNS_* variables
type App struct {
	Env  string `envconfig:"APP_ENV" default:"development" validate:"oneof=development test production"`
	Log  *Log   `envconfig:"LOG" validate:"required"`
	Demo *Demo  `envconfig:"DEMO" validate:"required"`
}
