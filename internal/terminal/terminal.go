// Package terminal drives the scripted cyber-hero mini-game: a fixed
// command table, three missions, no real networking anywhere near it.
package terminal

import (
	"fmt"
	"sort"
	"strings"
)

const (
	MissionFirewall = "firewall"
	MissionPassword = "password"
	MissionPhish    = "phish"
)

// Session holds one player's progress. Zero value is ready to use.
type Session struct {
	Completed map[string]bool `json:"completed"`
}

func NewSession() *Session {
	return &Session{Completed: map[string]bool{}}
}

// Result is what one command produces: the lines to print and whether the
// screen should be wiped first.
type Result struct {
	Lines []string `json:"lines"`
	Clear bool     `json:"clear"`
}

type command struct {
	help string
	run  func(s *Session, arg string) Result
}

var commands map[string]command

// Populated in init so the help closure can walk the table it lives in.
func init() {
	commands = map[string]command{
		"help": {
			help: "list available commands",
			run: func(s *Session, _ string) Result {
				names := make([]string, 0, len(commands))
				for name := range commands {
					names = append(names, name)
				}
				sort.Strings(names)
				lines := []string{"Available commands:"}
				for _, name := range names {
					lines = append(lines, fmt.Sprintf("  %-10s %s", name, commands[name].help))
				}
				return Result{Lines: lines}
			},
		},
		"scan": {
			help: "show mission status",
			run: func(s *Session, _ string) Result {
				lines := []string{"Scanning network..."}
				for _, m := range []string{MissionFirewall, MissionPassword, MissionPhish} {
					status := "PENDING"
					if s.Completed[m] {
						status = "SECURED"
					}
					lines = append(lines, fmt.Sprintf("  %-10s [%s]", m, status))
				}
				return Result{Lines: lines}
			},
		},
		"firewall": {
			help: "raise the firewall",
			run: func(s *Session, _ string) Result {
				if s.Completed[MissionFirewall] {
					return Result{Lines: []string{"Firewall already up. Nice work!"}}
				}
				s.complete(MissionFirewall)
				return Result{Lines: []string{
					"Bringing firewall online...",
					"Firewall is UP. The crocodile's den is safe!",
				}}
			},
		},
		"password": {
			help: "password <new-password>: set a strong password",
			run: func(s *Session, arg string) Result {
				if arg == "" {
					return Result{Lines: []string{"Usage: password <new-password>"}}
				}
				if !strongPassword(arg) {
					return Result{Lines: []string{
						"Too weak! Use at least 8 characters with letters and numbers.",
					}}
				}
				s.complete(MissionPassword)
				return Result{Lines: []string{"Strong password set. Hackers hate this trick!"}}
			},
		},
		"phish": {
			help: "inspect the suspicious email",
			run: func(s *Session, _ string) Result {
				s.complete(MissionPhish)
				return Result{Lines: []string{
					"From: prize@totally-real-bank.example",
					"  'You win $1,000,000! Send your password now!'",
					"You reported the email. Phishing attempt blocked!",
				}}
			},
		},
		"clear": {
			help: "clear the screen",
			run: func(s *Session, _ string) Result {
				return Result{Clear: true}
			},
		},
	}
}

// Exec runs one input line against the dispatch table.
func (s *Session) Exec(input string) Result {
	input = strings.TrimSpace(input)
	if input == "" {
		return Result{}
	}

	name := input
	arg := ""
	if i := strings.IndexByte(input, ' '); i >= 0 {
		name, arg = input[:i], strings.TrimSpace(input[i+1:])
	}

	cmd, ok := commands[strings.ToLower(name)]
	if !ok {
		return Result{Lines: []string{fmt.Sprintf("command not found: %s (try 'help')", name)}}
	}
	doneBefore := s.Done()
	out := cmd.run(s, arg)

	if s.Done() && !doneBefore {
		out.Lines = append(out.Lines,
			"",
			"ALL MISSIONS COMPLETE. You are a certified Cyber Hero!",
		)
	}
	return out
}

func (s *Session) complete(mission string) {
	if s.Completed == nil {
		s.Completed = map[string]bool{}
	}
	s.Completed[mission] = true
}

// Done reports whether every mission is secured.
func (s *Session) Done() bool {
	return s.Completed[MissionFirewall] && s.Completed[MissionPassword] && s.Completed[MissionPhish]
}

func strongPassword(pw string) bool {
	if len(pw) < 8 {
		return false
	}
	hasLetter, hasDigit := false, false
	for _, c := range pw {
		switch {
		case 'a' <= c && c <= 'z', 'A' <= c && c <= 'Z':
			hasLetter = true
		case '0' <= c && c <= '9':
			hasDigit = true
		}
	}
	return hasLetter && hasDigit
}
