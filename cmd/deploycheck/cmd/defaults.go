package cmd

var (
	DefaultLogFile  = "deploycheck.log"
	DefaultLogLevel = "info"
)
