package web

import (
	"time"

	"github.com/urfave/cli"
)

const domainFlag = "domain"

func RegisterHelperFlags(f []cli.Flag) []cli.Flag {
	return append(f,
		cli.StringFlag{
			Name:   domainFlag,
			Usage:  "domain",
			Value:  "http://localhost:8080",
			EnvVar: "DOMAIN",
		},
	)
}

type Helper struct {
	domain string
}

func NewHelper(c *cli.Context) *Helper {
	return &Helper{
		domain: c.String(domainFlag),
	}
}

func (s *Helper) Domain() string {
	return s.domain
}

func (s *Helper) CurrentYear() int {
	return time.Now().Year()
}
