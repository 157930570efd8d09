// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package metrics

import (
	"context"
	"net"
	"net/http"
	"time"

	"github.com/bitmark-inc/logger"
)

const shutdownTimeout = 5 * time.Second

// Configuration - metrics HTTP listener
type Configuration struct {
	Listen string `gluamapper:"listen" yaml:"listen" json:"listen"`
	Path   string `gluamapper:"path" yaml:"path" json:"path"`
}

// Server - background process serving the metrics endpoint
type Server struct {
	log      *logger.L
	listener net.Listener
	server   *http.Server
}

// NewServer - bind the listen address
//
// the listener is opened here so that a bad address fails at startup
func NewServer(configuration Configuration, m *Metrics) (*Server, error) {
	log := logger.New("metrics")

	path := configuration.Path
	if "" == path {
		path = "/metrics"
	}

	listener, err := net.Listen("tcp", configuration.Listen)
	if nil != err {
		log.Errorf("listen: %q  error: %s", configuration.Listen, err)
		return nil, err
	}

	mux := http.NewServeMux()
	mux.Handle(path, m.Handler())

	log.Infof("serving: http://%s%s", listener.Addr(), path)

	return &Server{
		log:      log,
		listener: listener,
		server: &http.Server{
			Handler:      mux,
			ReadTimeout:  10 * time.Second,
			WriteTimeout: 10 * time.Second,
		},
	}, nil
}

// Addr - the bound address
func (s *Server) Addr() net.Addr {
	return s.listener.Addr()
}

// Run - serve until shutdown
func (s *Server) Run(args interface{}, shutdown <-chan struct{}) {
	log := s.log

	log.Info("starting…")

	done := make(chan struct{})
	go func() {
		defer close(done)
		err := s.server.Serve(s.listener)
		if nil != err && http.ErrServerClosed != err {
			log.Errorf("serve error: %s", err)
		}
	}()

	<-shutdown

	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := s.server.Shutdown(ctx); nil != err {
		log.Errorf("shutdown error: %s", err)
	}
	<-done

	log.Info("stopped")
}
