//go:build !arenadebug

package system

const debugInvariants = false
