// Copyright SAP SE
// SPDX-License-Identifier: Apache-2.0

package tables

import (
	"strconv"
	"strings"
)

var sizeUnits = []string{"KB", "MB", "GB", "TB", "PB"}

// Human readable size of the given number of bytes, e.g. "512MB".
// Sizes below one kilobyte are shown as plain number.
func fileSize(bytes float64, format func(float64) string) string {
	if bytes < 1024 {
		return strconv.Itoa(int(bytes))
	}
	value := bytes / 1024
	unit := 0
	for value >= 1024 && unit < len(sizeUnits)-1 {
		value /= 1024
		unit++
	}
	return format(value) + sizeUnits[unit]
}

func intFormat(value float64) string {
	return strconv.Itoa(int(value))
}

// One decimal, without a trailing ".0".
func floatFormat(value float64) string {
	return strings.TrimSuffix(strconv.FormatFloat(value, 'f', 1, 64), ".0")
}

// Format megabytes, e.g. 512 -> "512MB" and 2048 -> "2GB".
func MBFormat(mb int) string {
	return fileSize(float64(mb)*1024*1024, intFormat)
}

// Format gigabytes, e.g. 1 -> "1GB" and 1536 -> "1.5TB".
func DiskGBFormat(gb float64) string {
	return fileSize(gb*1024*1024*1024, floatFormat)
}
