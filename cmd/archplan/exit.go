package main

// Process exit codes. Stable across releases so scripts can branch on them.
const (
	exitOK                = 0
	exitInternalFailure   = 1
	exitInvalidInput      = 2
	exitVerifyFailed      = 3
	exitMissingDependency = 4
)
