// Package domain contains the core domain model for figletctl.
//
// The domain is rendering- and terminal-agnostic: it does not depend on the
// figlet library, cobra, or any TUI toolkit. Infra/adapters map into/from
// these types.
package domain
