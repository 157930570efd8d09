// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package certificate_test

import (
	"crypto/tls"
	"io/ioutil"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"golang.org/x/crypto/sha3"

	"github.com/bitmark-inc/logger"

	"github.com/pawledger/pawledgerd/fault"
	"github.com/pawledger/pawledgerd/rpc/certificate"
	"github.com/pawledger/pawledgerd/rpc/fixtures"
)

func generate(t *testing.T) (string, string) {
	dir, err := ioutil.TempDir("", "certificate")
	if nil != err {
		t.Fatalf("temp dir error: %s", err)
	}
	certificateFile := filepath.Join(dir, "rpc.crt")
	keyFile := filepath.Join(dir, "rpc.key")

	err = certificate.Generate("test", certificateFile, keyFile, []string{"127.0.0.1"})
	if nil != err {
		t.Fatalf("generate error: %s", err)
	}
	return certificateFile, keyFile
}

func TestGet(t *testing.T) {
	fixtures.SetupTestLogger()
	defer fixtures.TeardownTestLogger()

	certificateFile, keyFile := generate(t)
	defer os.RemoveAll(filepath.Dir(certificateFile))

	cer, _ := ioutil.ReadFile(certificateFile)
	key, _ := ioutil.ReadFile(keyFile)

	tlsConfig, fingerprint, err := certificate.Get(
		logger.New(fixtures.LogCategory),
		"test",
		string(cer),
		string(key),
	)
	assert.Nil(t, err, "wrong Get")

	pair, _ := tls.X509KeyPair(cer, key)

	assert.Equal(t, sha3.Sum256(pair.Certificate[0]), fingerprint, "wrong fingerprint")
	assert.Equal(t, pair, tlsConfig.Certificates[0], "wrong config")
}

func TestGetMismatch(t *testing.T) {
	fixtures.SetupTestLogger()
	defer fixtures.TeardownTestLogger()

	_, _, err := certificate.Get(logger.New(fixtures.LogCategory), "test", "junk", "junk")
	assert.NotNil(t, err, "junk accepted")
}

func TestLoad(t *testing.T) {
	fixtures.SetupTestLogger()
	defer fixtures.TeardownTestLogger()

	certificateFile, keyFile := generate(t)
	defer os.RemoveAll(filepath.Dir(certificateFile))

	log := logger.New(fixtures.LogCategory)

	tlsConfig, fingerprint, err := certificate.Load(log, "test", certificateFile, keyFile)
	assert.Nil(t, err, "wrong Load")
	assert.Equal(t, certificate.Fingerprint(tlsConfig.Certificates[0].Certificate[0]), fingerprint, "wrong fingerprint")

	_, _, err = certificate.Load(log, "test", certificateFile+".missing", keyFile)
	assert.NotNil(t, err, "missing certificate accepted")
}

func TestGenerateExisting(t *testing.T) {
	certificateFile, keyFile := generate(t)
	defer os.RemoveAll(filepath.Dir(certificateFile))

	err := certificate.Generate("test", certificateFile, keyFile+".new", nil)
	assert.Equal(t, fault.CertificateFileAlreadyExists, err, "certificate overwritten")

	err = certificate.Generate("test", certificateFile+".new", keyFile, nil)
	assert.Equal(t, fault.KeyFileAlreadyExists, err, "key overwritten")
}
