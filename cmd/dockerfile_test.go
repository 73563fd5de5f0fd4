package cmd

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"
	"regexp"
	"strings"
	"testing"
	"time"

	"social-network/core/config"
	"social-network/core/server"
	"social-network/core/testutil"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"
)

// dockerfile holds the instructions of the repository Dockerfile, continuation
// lines joined.
type dockerfile struct {
	instructions []string
}

func readDockerfile(t *testing.T) dockerfile {
	t.Helper()
	f, err := os.Open("../Dockerfile")
	require.NoError(t, err)
	defer f.Close()

	var df dockerfile
	var cur strings.Builder
	sc := bufio.NewScanner(f)
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		if strings.HasSuffix(line, "\\") {
			cur.WriteString(strings.TrimSuffix(line, "\\") + " ")
			continue
		}
		cur.WriteString(line)
		df.instructions = append(df.instructions, cur.String())
		cur.Reset()
	}
	require.NoError(t, sc.Err())
	return df
}

// all returns the arguments of every instruction named op.
func (d dockerfile) all(op string) []string {
	var out []string
	for _, in := range d.instructions {
		if strings.HasPrefix(strings.ToUpper(in), op+" ") {
			out = append(out, strings.TrimSpace(in[len(op)+1:]))
		}
	}
	return out
}

func TestDockerfile_PortsAgree(t *testing.T) {
	df := readDockerfile(t)
	cfg, err := config.LoadConfig(t.TempDir())
	require.NoError(t, err)

	expose := df.all("EXPOSE")
	require.Len(t, expose, 1)
	assert.Equal(t, server.DefaultPort, expose[0])

	envs := strings.Join(df.all("ENV"), " ")
	assert.Contains(t, envs, "SERVER_PORT="+server.DefaultPort)
	assert.Contains(t, envs, "SERVER_HOST=0.0.0.0")

	assert.Equal(t, server.DefaultPort, cfg.Server.Port)
	probe, err := url.Parse(cfg.Probe.URL)
	require.NoError(t, err)
	assert.Equal(t, server.DefaultPort, probe.Port())
	assert.Equal(t, "/health", probe.Path)
}

func TestDockerfile_HealthcheckMatchesProbeDefaults(t *testing.T) {
	df := readDockerfile(t)
	cfg, err := config.LoadConfig(t.TempDir())
	require.NoError(t, err)

	hc := df.all("HEALTHCHECK")
	require.Len(t, hc, 1)

	flag := func(name string) string {
		m := regexp.MustCompile(`--` + name + `=(\S+)`).FindStringSubmatch(hc[0])
		require.NotNil(t, m, name)
		return m[1]
	}
	assert.Equal(t, cfg.Probe.Interval.String(), normalize(t, flag("interval")))
	assert.Equal(t, cfg.Probe.Timeout.String(), normalize(t, flag("timeout")))
	assert.Equal(t, cfg.Probe.StartPeriod.String(), normalize(t, flag("start-period")))
	assert.Equal(t, fmt.Sprint(cfg.Probe.Retries), flag("retries"))
	assert.Contains(t, hc[0], `CMD ["socialnet", "healthcheck"]`)

	assert.Equal(t, []string{`["socialnet"]`}, df.all("ENTRYPOINT"))
	assert.Equal(t, []string{`["start"]`}, df.all("CMD"))
}

func normalize(t *testing.T, s string) string {
	d, err := time.ParseDuration(s)
	require.NoError(t, err)
	return d.String()
}

func TestDockerfile_Stages(t *testing.T) {
	df := readDockerfile(t)

	from := df.all("FROM")
	require.Len(t, from, 2)
	assert.Regexp(t, `^golang:\S+-bookworm AS builder$`, from[0])
	assert.Equal(t, "debian:bookworm-slim", from[1])

	runs := strings.Join(df.all("RUN"), "\n")
	assert.Contains(t, runs, "go mod download")
	assert.Contains(t, runs, "gcc")
	assert.Contains(t, runs, "ca-certificates")
	assert.Contains(t, runs, "/out/socialnet")
}

func TestImage_BecomesHealthy(t *testing.T) {
	testutil.RequireDocker(t)
	if os.Getenv("SOCIALNET_IMAGE_TEST") == "" {
		t.Skip("set SOCIALNET_IMAGE_TEST=1 to build the image")
	}

	ctx := context.Background()
	container, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: testcontainers.ContainerRequest{
			FromDockerfile: testcontainers.FromDockerfile{
				Context:    "..",
				Dockerfile: "Dockerfile",
			},
			ExposedPorts: []string{server.DefaultPort + "/tcp"},
			WaitingFor:   wait.ForHealthCheck().WithStartupTimeout(3 * time.Minute),
		},
		Started: true,
	})
	testcontainers.CleanupContainer(t, container)
	require.NoError(t, err)

	host, err := container.Host(ctx)
	require.NoError(t, err)
	port, err := container.MappedPort(ctx, server.DefaultPort+"/tcp")
	require.NoError(t, err)

	resp, err := http.Get(fmt.Sprintf("http://%s:%s/health", host, port.Port()))
	require.NoError(t, err)
	defer resp.Body.Close()
	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Contains(t, string(body), `"status":"healthy"`)
}
