package commands

import (
	"fmt"
	"io"
	"reflect"
	"sort"
	"strings"

	"github.com/pivotal-cf/jhanda"
)

type helpData struct {
	Title         string
	Description   string
	Usage         string
	GlobalFlags   []string
	ArgumentsName string
	ArgumentLines []string
}

func (tc helpData) String() string {
	var sb strings.Builder

	if tc.Title != "encode-key" {
		sb.WriteString("\n")
		sb.WriteString(tc.Title)
		sb.WriteString("\n\n")
	}
	if tc.Description != "" {
		sb.WriteString(tc.Description)
		sb.WriteString("\n\n")
	}
	if tc.Usage != "" {
		sb.WriteString("Usage: ")
		sb.WriteString(tc.Usage)
		sb.WriteString("\n")
	}
	if len(tc.GlobalFlags) > 0 {
		for _, flag := range tc.GlobalFlags {
			sb.WriteString("  ")
			sb.WriteString(flag)
			sb.WriteString("\n")
		}
		sb.WriteString("\n")
	}

	if tc.ArgumentsName != "" {
		sb.WriteString(tc.ArgumentsName)
		sb.WriteString("\n")
	}

	for _, line := range tc.ArgumentLines {
		sb.WriteString(line)
		sb.WriteString("\n")
	}

	sb.WriteString("\n")

	return sb.String()
}

type Help struct {
	output   io.Writer
	flags    string
	commands jhanda.CommandSet
	groups   map[string][]string
}

func NewHelp(output io.Writer, flags string, commands jhanda.CommandSet, groups map[string][]string) Help {
	return Help{
		output:   output,
		flags:    flags,
		commands: commands,
		groups:   groups,
	}
}

func (h Help) Execute(args []string) error {
	var globalFlags []string
	for _, flag := range strings.Split(h.flags, "\n") {
		if flag != "" {
			globalFlags = append(globalFlags, flag)
		}
	}

	var data helpData
	if len(args) == 0 {
		data = h.buildGlobalContext()
	} else {
		var err error
		data, err = h.buildCommandContext(args[0])
		if err != nil {
			return err
		}
	}
	data.GlobalFlags = globalFlags

	_, err := fmt.Fprintf(h.output, "%s", data)
	return err
}

func (h Help) Usage() jhanda.Usage {
	return jhanda.Usage{
		Description:      "This command prints helpful usage information.",
		ShortDescription: "prints this usage information",
	}
}

func (h Help) buildGlobalContext() helpData {
	groupNames := make([]string, 0, len(h.groups))
	for groupName := range h.groups {
		groupNames = append(groupNames, groupName)
	}
	sort.Strings(groupNames)

	var commands []string
	for _, groupName := range groupNames {
		groupCommandNames := h.groups[groupName]
		if len(groupCommandNames) == 0 {
			continue
		}
		names := append([]string(nil), groupCommandNames...)
		maxLength := maxLen(names)
		sort.Strings(names)
		commands = append(commands, fmt.Sprintf("%s:", groupName))

		for _, name := range names {
			command := h.commands[name]
			name = padCommand(name, " ", maxLength)
			commands = append(commands, fmt.Sprintf("  %s  %s", name, command.Usage().ShortDescription))
		}

		commands = append(commands, "")
	}

	if envLines := h.environmentLines(groupNames); len(envLines) > 0 {
		commands = append(commands, "Environment Variables:")
		commands = append(commands, envLines...)
		commands = append(commands, "")
	}

	if len(commands) > 0 {
		commands = commands[:len(commands)-1]
	}

	return helpData{
		Title:         "encode-key",
		Description:   "encode-key turns service account key files into base64 strings for environment variables",
		Usage:         "encode-key [options] <command> [<args>]",
		ArgumentLines: commands,
	}
}

func (h Help) buildCommandContext(command string) (helpData, error) {
	usage, err := h.commands.Usage(command)
	if err != nil {
		return helpData{}, err
	}

	var (
		flagList        []string
		argsPlaceholder string
	)
	if usage.Flags != nil {
		flagUsage, err := jhanda.PrintUsage(usage.Flags)
		if err != nil {
			return helpData{}, err
		}

		for _, flag := range strings.Split(flagUsage, "\n") {
			if flag != "" {
				flagList = append(flagList, "  "+flag)
			}
		}

		if len(flagList) != 0 {
			argsPlaceholder = " [<args>]"
		}
	}

	return helpData{
		Title:         fmt.Sprintf("encode-key %s", command),
		Description:   usage.Description,
		Usage:         fmt.Sprintf("encode-key [options] %s%s", command, argsPlaceholder),
		ArgumentsName: "Flags",
		ArgumentLines: flagList,
	}, nil
}

// environmentLines lists every env tag on the flags of the grouped
// commands, sorted by variable name.
func (h Help) environmentLines(groupNames []string) []string {
	type envFlag struct{ name, flag string }

	var envFlags []envFlag
	for _, groupName := range groupNames {
		for _, commandName := range h.groups[groupName] {
			command, ok := h.commands[commandName]
			if !ok {
				continue
			}
			for _, f := range flagEnvTags(command.Usage().Flags) {
				envFlags = append(envFlags, envFlag{name: f[0], flag: commandName + " --" + f[1]})
			}
		}
	}

	sort.Slice(envFlags, func(i, j int) bool { return envFlags[i].name < envFlags[j].name })

	names := make([]string, 0, len(envFlags))
	for _, f := range envFlags {
		names = append(names, f.name)
	}
	maxLength := maxLen(names)

	lines := make([]string, 0, len(envFlags))
	for _, f := range envFlags {
		lines = append(lines, fmt.Sprintf("  %s  %s", padCommand(f.name, " ", maxLength), f.flag))
	}
	return lines
}

// flagEnvTags returns {env, long} pairs for the fields of a jhanda flags struct.
func flagEnvTags(flags any) [][2]string {
	if flags == nil {
		return nil
	}
	t := reflect.TypeOf(flags)
	if t.Kind() == reflect.Pointer {
		t = t.Elem()
	}
	if t.Kind() != reflect.Struct {
		return nil
	}

	var pairs [][2]string
	for i := 0; i < t.NumField(); i++ {
		field := t.Field(i)
		if field.Anonymous && field.Type.Kind() == reflect.Struct {
			pairs = append(pairs, flagEnvTags(reflect.Zero(field.Type).Interface())...)
			continue
		}
		env, ok := field.Tag.Lookup("env")
		if !ok || env == "" {
			continue
		}
		pairs = append(pairs, [2]string{env, field.Tag.Get("long")})
	}
	return pairs
}

func padCommand(str, pad string, length int) string {
	return str + strings.Repeat(pad, length-len(str))
}

func maxLen(slice []string) int {
	var max int
	for _, e := range slice {
		if len(e) > max {
			max = len(e)
		}
	}
	return max
}
