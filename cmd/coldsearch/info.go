package main

import (
	"unsafe"

	"github.com/alecthomas/kingpin/v2"
	"github.com/dustin/go-humanize"
	"github.com/go-kit/log"
	"github.com/go-kit/log/level"
	"github.com/klauspost/cpuid"
	"golang.org/x/sys/cpu"
)

// infoCommand logs what's known about the caches on this machine.
type infoCommand struct {
	logLevel *string
}

func (cmd *infoCommand) run(c *kingpin.ParseContext) error {
	logCPU(newLogger(*cmd.logLevel))
	return nil
}

func logCPU(logger log.Logger) {
	level.Info(logger).Log(
		"msg", "cpu",
		"brand", cpuid.CPU.BrandName,
		"logical_cores", cpuid.CPU.LogicalCores,
		"cache_line", cpuid.CPU.CacheLine,
		"cache_line_pad", unsafe.Sizeof(cpu.CacheLinePad{}),
	)
	level.Info(logger).Log(
		"msg", "caches",
		"l1i", cacheSize(cpuid.CPU.Cache.L1I),
		"l1d", cacheSize(cpuid.CPU.Cache.L1D),
		"l2", cacheSize(cpuid.CPU.Cache.L2),
		"l3", cacheSize(cpuid.CPU.Cache.L3),
	)
}

// cacheSize formats a cpuid cache size, which is negative when unknown.
func cacheSize(size int) string {
	if size <= 0 {
		return "unknown"
	}
	return humanize.IBytes(uint64(size))
}

func addInfoCommand(app *kingpin.Application) {
	cmd := &infoCommand{}
	info := app.Command("info", "Print CPU cache details.").Action(cmd.run)
	cmd.logLevel = addLogLevelFlag(info)
}
