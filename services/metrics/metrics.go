package metrics

import (
	"fmt"
	"net"
	"net/http"

	"github.com/pkg/errors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	log "github.com/sirupsen/logrus"
	"github.com/urfave/cli"
)

const (
	metricsHostFlag = "metrics-host"
	metricsPortFlag = "metrics-port"
)

func RegisterFlags(f []cli.Flag) []cli.Flag {
	return append(f,
		cli.StringFlag{
			Name:   metricsHostFlag,
			Usage:  "metrics listening host",
			Value:  "",
			EnvVar: "METRICS_HOST",
		},
		cli.IntFlag{
			Name:   metricsPortFlag,
			Usage:  "metrics listening port (0 disables)",
			Value:  0,
			EnvVar: "METRICS_PORT",
		},
	)
}

type Metrics struct {
	addr string
	srv  *http.Server
}

// New returns nil when metrics are disabled.
func New(c *cli.Context) *Metrics {
	port := c.Int(metricsPortFlag)
	if port == 0 {
		return nil
	}
	return &Metrics{
		addr: fmt.Sprintf("%s:%d", c.String(metricsHostFlag), port),
		srv: &http.Server{
			Handler: NewHandler(),
		},
	}
}

func NewHandler() http.Handler {
	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.Handler())
	return mux
}

func (s *Metrics) Serve() error {
	ln, err := net.Listen("tcp", s.addr)
	if err != nil {
		return errors.Wrap(err, "failed to metrics listen to tcp connection")
	}
	log.Infof("serving Metrics at %v", s.addr)
	err = s.srv.Serve(ln)
	if errors.Is(err, http.ErrServerClosed) {
		return nil
	}
	return err
}

func (s *Metrics) Close() {
	log.Info("closing Metrics")
	_ = s.srv.Close()
}
