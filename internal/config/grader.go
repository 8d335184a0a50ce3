package config

import (
	"os"
	"strconv"
	"time"
)

type GraderCfg struct {
	// ScenarioTimeout bounds a single compile-and-run of the submission.
	ScenarioTimeout time.Duration
	CompilerPath    string
	WorkDir         string
	RunLockTTL      time.Duration
}

func NewGraderCfg() *GraderCfg {
	timeoutMs := os.Getenv("SCENARIO_TIMEOUT_MS")
	varInt, err := strconv.Atoi(timeoutMs)
	if err != nil {
		varInt = 3000
	}
	compiler := os.Getenv("C_COMPILER_PATH")
	if compiler == "" {
		compiler = "gcc"
	}
	workDir := os.Getenv("GRADER_WORK_DIR")
	if workDir == "" {
		workDir = os.TempDir()
	}
	lockTTLSec := os.Getenv("RUN_LOCK_TTL_SEC")
	varInt2, err := strconv.Atoi(lockTTLSec)
	if err != nil {
		// timeout x 4 scenarios plus slack for the compile steps
		varInt2 = 20
	}
	return &GraderCfg{
		ScenarioTimeout: time.Duration(varInt) * time.Millisecond,
		CompilerPath:    compiler,
		WorkDir:         workDir,
		RunLockTTL:      time.Duration(varInt2) * time.Second,
	}
}
