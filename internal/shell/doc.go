// Package shell provides shell integration for prj. It generates the
// sourced wrapper function that forwards arguments to the prj binary,
// scans its stdout for NAVIGATE_TO:/ACTIVATE_VENV: directive lines, and
// applies them to the current shell (cd, source) while relaying every
// other line verbatim and preserving the exit status. It also knows how
// to install the wrapper into each shell's rc file.
package shell
