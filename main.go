package main

import (
	"errors"
	"log"
	"os"

	"github.com/go-git/go-billy/v5/osfs"
	"github.com/pivotal-cf/jhanda"

	"github.com/gscube/encode-key/internal/commands"
	"github.com/gscube/encode-key/internal/keyfile"
)

var version = "unknown"

func main() {
	errLogger := log.New(os.Stderr, "", 0)
	outLogger := log.New(os.Stdout, "", 0)

	var global struct {
		Help    bool `short:"h" long:"help"    description:"prints this usage information"         default:"false"`
		Version bool `short:"v" long:"version" description:"prints the encode-key release version" default:"false"`
	}

	args, err := jhanda.Parse(&global, os.Args[1:])
	if err != nil {
		errLogger.Fatal(err)
	}

	globalFlagsUsage, err := jhanda.PrintUsage(global)
	if err != nil {
		errLogger.Fatal(err)
	}

	var command string
	if len(args) > 0 {
		command, args = args[0], args[1:]
	}

	if global.Version {
		command = "version"
	}

	if global.Help {
		command = "help"
	}

	if command == "" {
		command = "help"
	}

	commandSet := jhanda.CommandSet{}
	commandSet["help"] = commands.NewHelp(os.Stdout, globalFlagsUsage, commandSet, map[string][]string{
		"Key Commands":  {"encode", "decode"},
		"Info Commands": {"help", "version"},
	})
	commandSet["version"] = commands.NewVersion(outLogger, version)
	commandSet["encode"] = commands.NewEncode(outLogger, keyfile.NewEncoder(errLogger, osfs.Default))
	commandSet["decode"] = commands.NewDecode(outLogger, keyfile.NewDecoder())

	err = commandSet.Execute(command, args)
	if err != nil {
		if errors.Is(err, commands.ErrReported) {
			os.Exit(1)
		}
		errLogger.Fatal(err)
	}
}
