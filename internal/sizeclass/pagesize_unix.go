//go:build linux || darwin || freebsd

package sizeclass

import "golang.org/x/sys/unix"

func queryPageSize() int {
	return unix.Getpagesize()
}
