package commands

import "github.com/mamaar/gocalc/internal/cli"

// RegisterAll wires every gocalc command into the runner
func RegisterAll(runner *cli.Runner, env *cli.Env) {
	runner.RegisterCommand("repl", ReplCommand(env))
	runner.RegisterCommand("calc", CalcCommand(env))
	runner.RegisterCommand("list", ListCommand(env))
	runner.RegisterCommand("version", VersionCommand(env))
	runner.RegisterCommand("help", HelpCommand(env))
}
