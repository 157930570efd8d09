// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package listeners - TLS JSON-RPC accept loops
package listeners

import (
	"crypto/tls"
	"net"
	"net/rpc"
	"net/rpc/jsonrpc"
	"strings"
	"sync"

	"github.com/bitmark-inc/logger"

	"github.com/pawledger/pawledgerd/counter"
	"github.com/pawledger/pawledgerd/fault"
	"github.com/pawledger/pawledgerd/util"
)

const (
	logName            = "client_rpc"
	minConnectionCount = 1
)

// RPCConfiguration - configuration file data for RPC setup
type RPCConfiguration struct {
	MaximumConnections uint64   `gluamapper:"maximum_connections" yaml:"maximum_connections" json:"maximum_connections"`
	Listen             []string `gluamapper:"listen" yaml:"listen" json:"listen"`
	Certificate        string   `gluamapper:"certificate" yaml:"certificate" json:"certificate"`
	PrivateKey         string   `gluamapper:"private_key" yaml:"private_key" json:"private_key"`
}

// RPCListener - one accept loop per listen address sharing a
// connection limit
type RPCListener struct {
	sync.Mutex

	log             *logger.L
	server          *rpc.Server
	count           counter.Counter
	maxConnections  uint64
	tlsConfig       *tls.Config
	ipType          []string
	listenIPAndPort []string
	listeners       []net.Listener
	closed          bool
	wg              sync.WaitGroup
}

// NewRPC - validate the configuration, nothing is bound until Serve
func NewRPC(
	configuration *RPCConfiguration,
	log *logger.L,
	server *rpc.Server,
	tlsConfig *tls.Config,
	certificateFingerprint [32]byte,
) (*RPCListener, error) {
	if configuration.MaximumConnections < minConnectionCount {
		log.Errorf("invalid %s maximum connection limit: %d", logName, configuration.MaximumConnections)
		return nil, fault.MissingParameters
	}

	if 0 == len(configuration.Listen) {
		log.Errorf("missing %s listen", logName)
		return nil, fault.MissingParameters
	}

	log.Infof("%s: SHA3-256 fingerprint: %x", logName, certificateFingerprint)

	r := &RPCListener{
		log:            log,
		server:         server,
		maxConnections: configuration.MaximumConnections,
		tlsConfig:      tlsConfig,
	}

	// validate all listen addresses
	var err error
	r.listenIPAndPort, r.ipType, err = parseListenAddress(configuration.Listen, log)
	if nil != err {
		return nil, err
	}

	return r, nil
}

// Serve - bind every listen address and start the accept loops
func (r *RPCListener) Serve() error {
	r.Lock()
	defer r.Unlock()

	for i, listen := range r.listenIPAndPort {
		r.log.Infof("starting RPC server: %s", listen)
		listener, err := tls.Listen(r.ipType[i], listen, r.tlsConfig)
		if err != nil {
			r.log.Errorf("rpc server listen error: %s", err)
			return err
		}
		r.listeners = append(r.listeners, listener)

		r.wg.Add(1)
		go r.accept(listener)
	}
	return nil
}

func (r *RPCListener) accept(listen net.Listener) {
	defer r.wg.Done()

	for {
		conn, err := listen.Accept()
		if err != nil {
			if r.isClosed() {
				r.log.Info("RPC accept stopped")
			} else {
				r.log.Errorf("rpc.server terminated: accept error: %s", err)
			}
			break
		}
		if !r.count.IncrementBelow(r.maxConnections) {
			r.log.Warnf("connection limit reached, dropping: %s", conn.RemoteAddr())
			_ = conn.Close()
			continue
		}
		go func() {
			r.server.ServeCodec(jsonrpc.NewServerCodec(conn))
			_ = conn.Close()
			r.count.Decrement()
		}()
	}
	_ = listen.Close()
}

func (r *RPCListener) isClosed() bool {
	r.Lock()
	defer r.Unlock()
	return r.closed
}

// Addrs - bound addresses, empty before Serve
func (r *RPCListener) Addrs() []net.Addr {
	r.Lock()
	defer r.Unlock()

	addrs := make([]net.Addr, 0, len(r.listeners))
	for _, l := range r.listeners {
		addrs = append(addrs, l.Addr())
	}
	return addrs
}

// Connections - number of clients currently being served
func (r *RPCListener) Connections() uint64 {
	return r.count.Uint64()
}

// Close - stop accepting; connections already open are left to finish
func (r *RPCListener) Close() error {
	r.Lock()
	if r.closed {
		r.Unlock()
		return nil
	}
	r.closed = true
	var err error
	for _, l := range r.listeners {
		if e := l.Close(); nil != e && nil == err {
			err = e
		}
	}
	r.Unlock()

	r.wg.Wait()
	return err
}

// Run - background process that closes the listeners on shutdown
func (r *RPCListener) Run(args interface{}, shutdown <-chan struct{}) {
	<-shutdown
	if err := r.Close(); nil != err {
		r.log.Errorf("close error: %s", err)
	}
}

// returns the canonical listen addresses and the network for each
func parseListenAddress(addrs []string, log *logger.L) ([]string, []string, error) {
	listen := make([]string, len(addrs))
	network := make([]string, len(addrs))
	for i, address := range addrs {
		if strings.HasPrefix(address, "*:") {
			// change "*:PORT" to "[::]:PORT"
			// on the assumption that this will listen on tcp4 and tcp6
			listen[i] = "[::]:" + strings.TrimPrefix(address, "*:")
			network[i] = "tcp"
			continue
		}

		canonical, err := util.CanonicalIPandPort(address)
		if nil != err {
			log.Errorf("rpc server listen: %q  error: %s", address, err)
			return nil, nil, err
		}
		listen[i] = canonical
		if '[' == canonical[0] {
			network[i] = "tcp6"
		} else {
			network[i] = "tcp4"
		}
	}

	return listen, network, nil
}
