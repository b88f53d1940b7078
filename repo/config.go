package repo

import (
	"bufio"
	"bytes"
	"crypto/rand"
	"encoding/base64"
	"fmt"
	"io"
	"os"
	"path"
	"path/filepath"
	"strings"

	"github.com/genemuffin/genemuffind/version"
	"github.com/jessevdk/go-flags"
	"github.com/natefinch/lumberjack"
	"github.com/op/go-logging"
)

const (
	defaultConfigFilename = "genemuffin.conf"
	defaultLogDirname     = "logs"
	defaultLogFilename    = "gm.log"
	defaultGatewayAddr    = "127.0.0.1:4002"
)

var (
	DefaultHomeDir    = AppDataDir("genemuffin", false)
	defaultConfigFile = filepath.Join(DefaultHomeDir, defaultConfigFilename)
	defaultLogDir     = filepath.Join(DefaultHomeDir, defaultLogDirname)

	fileLogFormat   = logging.MustStringFormatter(`%{time:2006-01-02T15:04:05} [%{level}] [%{module}] %{message}`)
	stdoutLogFormat = logging.MustStringFormatter(`%{color:reset}%{color}%{time:15:04:05.000} [%{level}] [%{module}] %{message}`)
)

// Config defines the configuration options for the GeneMuffin daemon.
//
// See LoadConfig for details on the configuration load process.
type Config struct {
	ShowVersion   bool     `short:"v" long:"version" description:"Display version information and exit"`
	ConfigFile    string   `short:"C" long:"configfile" description:"Path to configuration file"`
	DataDir       string   `short:"b" long:"datadir" description:"Directory to store data"`
	LogDir        string   `long:"logdir" description:"Directory to log output."`
	LogLevel      string   `short:"l" long:"loglevel" description:"set the logging level [debug, info, notice, warning, error, critical]" default:"info"`
	GatewayAddr   string   `long:"gatewayaddr" description:"Override the default API gateway listen address with the provided value"`
	ProfileAPIURL string   `long:"profileapi" description:"Override the URL of the remote profile API"`
	APIUsername   string   `short:"u" long:"apiusername" description:"The username to use with the API authentication"`
	APIPassword   string   `short:"P" long:"apipassword" description:"The password to use with the API authentication"`
	APICookie     string   `long:"apicookie" description:"A cookie to use for authentication in addition to the username and password"`
	APINoCors     bool     `long:"nocors" description:"Disable CORS on the API"`
	APIAllowedIPs []string `long:"allowedip" description:"Only allow API connections from these IP addresses"`
	APIPublic     bool     `long:"publicgateway" description:"When this option is used only the public GET endpoints will be exposed on the API"`
	UseTestData   bool     `long:"testdata" description:"Serve canned profile data instead of hitting the remote profile API"`
	UseSSL        bool     `long:"ssl" description:"Use SSL on the API"`
	SSLCertFile   string   `long:"sslcertfile" description:"Path to the SSL certificate"`
	SSLKeyFile    string   `long:"sslkeyfile" description:"Path to the SSL key file"`
}

// LoadConfig initializes and parses the config using a config file and command
// line options.
//
// The configuration proceeds as follows:
// 	1) Start with a default config with sane settings
// 	2) Pre-parse the command line to check for an alternative config file
// 	3) Load configuration file overwriting defaults with any specified options
// 	4) Parse CLI options and overwrite/add any specified options
//
// The above results in the daemon functioning properly without any config
// settings while still allowing the user to override settings with config
// files and command line options.  Command line options always take precedence.
func LoadConfig() (*Config, []string, error) {
	// Default config.
	cfg := Config{
		DataDir:     DefaultHomeDir,
		ConfigFile:  defaultConfigFile,
		LogDir:      defaultLogDir,
		GatewayAddr: defaultGatewayAddr,
	}

	// Pre-parse the command line options to see if an alternative config
	// file or the version flag was specified.  Any errors aside from the
	// help message error can be ignored here since they will be caught by
	// the final parse below.
	preCfg := cfg
	preParser := flags.NewParser(&cfg, flags.HelpFlag)
	_, err := preParser.Parse()
	if err != nil {
		if e, ok := err.(*flags.Error); ok && e.Type == flags.ErrHelp {
			return nil, nil, err
		}
	}

	// Show the version and exit if the version flag was specified.
	appName := filepath.Base(os.Args[0])
	appName = strings.TrimSuffix(appName, filepath.Ext(appName))
	usageMessage := fmt.Sprintf("Use %s -h to show usage", appName)
	if preCfg.ShowVersion {
		fmt.Println(appName, "version", version.String())
		os.Exit(0)
	}

	// Load additional config from file.
	var configFileError error
	parser := flags.NewParser(&cfg, flags.Default)
	if _, err := os.Stat(preCfg.ConfigFile); os.IsNotExist(err) {
		err := createDefaultConfigFile(preCfg.ConfigFile)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error creating a "+
				"default config file: %v\n", err)
		}
	}

	err = flags.NewIniParser(parser).ParseFile(preCfg.ConfigFile)
	if err != nil {
		if _, ok := err.(*os.PathError); !ok {
			fmt.Fprintf(os.Stderr, "Error parsing config "+
				"file: %v\n", err)
			fmt.Fprintln(os.Stderr, usageMessage)
			return nil, nil, err
		}
		configFileError = err
	}

	cfg.DataDir = cleanAndExpandPath(cfg.DataDir)

	SetupLogging(cfg.LogDir, cfg.LogLevel)

	// Warn about missing config file only after all other configuration is
	// done.  This prevents the warning on help messages and invalid
	// options.  Note this should go directly before the return.
	if configFileError != nil {
		log.Warningf("%v", configFileError)
	}
	return &cfg, nil, nil
}

// createDefaultConfigFile copies the sample config content to the given
// destination path, and populates it with a randomly generated API username
// and password.
func createDefaultConfigFile(destinationPath string) error {
	// Create the destination directory if it does not exists
	err := os.MkdirAll(filepath.Dir(destinationPath), 0700)
	if err != nil {
		return err
	}

	// We generate a random user and password
	randomBytes := make([]byte, 20)
	_, err = rand.Read(randomBytes)
	if err != nil {
		return err
	}
	generatedAPIUser := base64.StdEncoding.EncodeToString(randomBytes)

	_, err = rand.Read(randomBytes)
	if err != nil {
		return err
	}
	generatedAPIPass := base64.StdEncoding.EncodeToString(randomBytes)

	src := bytes.NewReader([]byte(sampleConfig))

	dest, err := os.OpenFile(destinationPath,
		os.O_RDWR|os.O_CREATE|os.O_TRUNC, 0600)
	if err != nil {
		return err
	}
	defer dest.Close()

	// We copy every line from the sample config file to the destination,
	// only replacing the two lines for apiusername and apipassword
	reader := bufio.NewReader(src)
	for err != io.EOF {
		var line string
		line, err = reader.ReadString('\n')
		if err != nil && err != io.EOF {
			return err
		}

		if strings.Contains(line, "apiusername=") {
			line = "apiusername=" + generatedAPIUser + "\n"
		} else if strings.Contains(line, "apipassword=") {
			line = "apipassword=" + generatedAPIPass + "\n"
		}

		if _, err := dest.WriteString(line); err != nil {
			return err
		}
	}

	return nil
}

// cleanAndExpandPath expands environment variables and leading ~ in the
// passed path, cleans the result, and returns it.
func cleanAndExpandPath(path string) string {
	// Expand initial ~ to OS specific home directory.
	if strings.HasPrefix(path, "~") {
		homeDir := filepath.Dir(DefaultHomeDir)
		path = strings.Replace(path, "~", homeDir, 1)
	}

	// NOTE: The os.ExpandEnv doesn't work with Windows-style %VARIABLE%,
	// but they variables can still be expanded via POSIX-style $VARIABLE.
	return filepath.Clean(os.ExpandEnv(path))
}

// SetupLogging configures the logging backends. Logs go to stdout and,
// when a log directory is set, to a rotated file.
func SetupLogging(logDir, logLevel string) {
	backendStdout := logging.NewLogBackend(os.Stdout, "", 0)
	backendStdoutFormatter := logging.NewBackendFormatter(backendStdout, stdoutLogFormat)

	if logDir != "" {
		rotator := &lumberjack.Logger{
			Filename:   path.Join(logDir, defaultLogFilename),
			MaxSize:    10, // Megabytes
			MaxBackups: 3,
			MaxAge:     30, // Days
		}

		backendFile := logging.NewLogBackend(rotator, "", 0)
		backendFileFormatter := logging.NewBackendFormatter(backendFile, fileLogFormat)
		logging.SetBackend(backendStdoutFormatter, backendFileFormatter)
	} else {
		logging.SetBackend(backendStdoutFormatter)
	}

	var level logging.Level
	switch strings.ToLower(logLevel) {
	case "debug":
		level = logging.DEBUG
	case "info":
		level = logging.INFO
	case "notice":
		level = logging.NOTICE
	case "warning":
		level = logging.WARNING
	case "error":
		level = logging.ERROR
	case "critical":
		level = logging.CRITICAL
	default:
		level = logging.INFO
	}
	logging.SetLevel(level, "")
}
