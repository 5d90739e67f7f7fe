package main

import (
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

var formFlagAliases = map[string]string{
	"exp":             "expires",
	"type":            "confection",
	"loc":             "location",
	"cat":             "category",
	"confection-type": "confection",
}

var queryFlagAliases = map[string]string{
	"q":      "query",
	"search": "query",
}

func addFormFlagAliases(cmds ...*cobra.Command) {
	for _, cmd := range cmds {
		setFlagAliases(cmd.Flags(), formFlagAliases)
	}
}

func addQueryFlagAliases(cmds ...*cobra.Command) {
	for _, cmd := range cmds {
		setFlagAliases(cmd.Flags(), queryFlagAliases)
	}
}

func setFlagAliases(flags *pflag.FlagSet, aliases map[string]string) {
	if len(aliases) == 0 {
		return
	}

	normalize := flags.GetNormalizeFunc()
	flags.SetNormalizeFunc(func(f *pflag.FlagSet, name string) pflag.NormalizedName {
		if alias, ok := aliases[name]; ok {
			name = alias
		}
		return normalize(f, name)
	})
}
