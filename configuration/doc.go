// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package configuration - parse a Lua or YAML configuration file
//
// for Lua most of base Lua is available such as reading files to set
// key data and getenv to extract environment supplied items; the file
// must return a single table.
//
// files ending in .yaml or .yml are decoded as YAML.
//
// structure fields are matched by the "gluamapper" tag for Lua and by
// the "yaml" tag for YAML.
package configuration
