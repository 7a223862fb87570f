// Package constants defines common constants used across nvmup
package constants

// Operating systems
const (
	OSWindows = "windows"
	OSDarwin  = "darwin"
	OSLinux   = "linux"
)

// Install methods
const (
	MethodGit    = "git"
	MethodScript = "script"
	MethodHTTP   = "http"
)

// External tool binaries
const (
	ToolGit  = "git"
	ToolCurl = "curl"
	ToolWget = "wget"
)
