//go:build windows

package sizeclass

import "golang.org/x/sys/windows"

func queryPageSize() int {
	var info windows.SystemInfo
	windows.GetSystemInfo(&info)
	if info.PageSize == 0 {
		return 4096
	}
	return int(info.PageSize)
}
