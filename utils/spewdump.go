package utils

import (
	"github.com/davecgh/go-spew/spew"
	"go.uber.org/zap"
)

var spewConfig *spew.ConfigState

func init() {
	spewConfig = spew.NewDefaultConfig()
	spewConfig.DisableCapacities = true
	spewConfig.DisablePointerAddresses = true
	spewConfig.SortKeys = true
}

func SDump(a ...interface{}) string {
	return spewConfig.Sdump(a...)
}

// LogDump writes the dump at debug level, so it costs nothing unless enabled.
func LogDump(log *zap.SugaredLogger, msg string, a ...interface{}) {
	if !log.Desugar().Core().Enabled(zap.DebugLevel) {
		return
	}
	log.Debugf("%s\n%s", msg, spewConfig.Sdump(a...))
}
