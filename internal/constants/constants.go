package constants

const (
	AppName        = `dn`
	Version        = `0.1.0`
	ConfigFile     = `config`
	ConfigFileType = `yaml`
	DatabaseFile   = `dn.db`
	LogFile        = `dn.log`
	EnvPrefix      = `dn`
)
