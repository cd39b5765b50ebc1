package main

import (
	"os"
	"strings"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	prefixed "github.com/x-cray/logrus-prefixed-formatter"
	"gopkg.in/natefinch/lumberjack.v2"

	"github.com/g-m-twostay/wordtally/Words"
)

func newRootCmd() *cobra.Command {
	v := viper.New()
	cmd := &cobra.Command{
		Use:   "wordtally OUTPUT INPUT...",
		Short: "count the words of text files",
		Long:  "wordtally counts the words of the input files and writes the counts, sorted by word, to OUTPUT.",
		Args:  cobra.MinimumNArgs(2),

		// SilenceUsage is an option to silence usage when an error occurs.
		SilenceUsage:  true,
		SilenceErrors: true,

		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return setup(cmd, v)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(args[0], args[1:], v.GetString("format"))
		},
	}

	cmd.PersistentFlags().Bool("debug", false, "debug flag")
	cmd.PersistentFlags().String("config", "", "config file")
	cmd.PersistentFlags().String("log-file", "", "write logs to this file instead of stderr, rotating it when it grows")
	cmd.Flags().String("format", Words.FormatText, "report format, text or table")
	return cmd
}

// setup binds the flags, the WORDTALLY_ environment variables and the config file, then the logger.
func setup(cmd *cobra.Command, v *viper.Viper) error {
	v.SetEnvPrefix("wordtally")
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	if err := v.BindPFlags(cmd.Flags()); err != nil {
		return errors.Wrap(err, "failed to bind flags")
	}

	if cfg := v.GetString("config"); cfg != "" {
		v.SetConfigFile(cfg)
		if err := v.ReadInConfig(); err != nil {
			return errors.Wrapf(err, "failed to load config file %s", cfg)
		}
	}

	logger := log.StandardLogger()
	logger.SetFormatter(&prefixed.TextFormatter{})
	logger.SetLevel(log.InfoLevel)
	if v.GetBool("debug") {
		logger.SetLevel(log.DebugLevel)
	}
	if fn := v.GetString("log-file"); fn != "" {
		logger.SetFormatter(&prefixed.TextFormatter{DisableColors: true, FullTimestamp: true})
		logger.SetOutput(&lumberjack.Logger{
			Filename:   fn,
			MaxSize:    10, // megabytes
			MaxBackups: 3,
		})
	} else {
		logger.SetOutput(os.Stderr)
	}

	return Words.CheckFormat(v.GetString("format"))
}

func run(output string, inputs []string, format string) error {
	counter := Words.NewTreeCounter()
	for _, name := range inputs {
		if err := countFile(counter, name); err != nil {
			return err
		}
	}

	log.Infof("writing report file %q...", output)
	if err := writeReport(counter, output, format); err != nil {
		return err
	}
	log.WithFields(log.Fields{
		"words":    counter.Total(),
		"distinct": counter.Distinct(),
	}).Info("done")
	return nil
}

func countFile(counter *Words.Counter, name string) error {
	f, err := os.Open(name)
	if err != nil {
		return errors.Wrapf(err, "cannot open input file %s", name)
	}
	defer f.Close()

	log.Infof("reading file %q...", name)
	total := counter.Total()
	n, err := counter.ReadFrom(f)
	if err != nil {
		return errors.Wrapf(err, "failed to read input file %s", name)
	}
	log.Debugf("%s: %d words in %d bytes", name, counter.Total()-total, n)
	return nil
}

func writeReport(counter *Words.Counter, name, format string) (err error) {
	f, err := os.Create(name)
	if err != nil {
		return errors.Wrapf(err, "cannot create output file %s", name)
	}
	defer func() {
		if cerr := f.Close(); err == nil && cerr != nil {
			err = errors.Wrapf(cerr, "failed to close output file %s", name)
		}
	}()
	return counter.Write(f, format)
}
