package main

import (
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeSeedConfig(t *testing.T, sinkSection string) string {
	t.Helper()
	dir := t.TempDir()
	body := fmt.Sprintf(`
log:
  file: %s
data:
  dir: %s
%s
`, filepath.Join(dir, "seed.log"), dir, sinkSection)
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.yaml"), []byte(body), 0o644))
	return dir
}

func TestRunRejectsMemorySink(t *testing.T) {
	dir := writeSeedConfig(t, "progress:\n  sink: memory")

	err := run(dir)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "不需要写入种子数据")
}

func TestRunReturnsRedisConnectError(t *testing.T) {
	dir := writeSeedConfig(t, "progress:\n  sink: redis\nredis:\n  host: 127.0.0.1\n  port: 1")

	err := run(dir)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Redis 连接失败")
}
