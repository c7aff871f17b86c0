/*

SPDX-Copyright: Copyright (c) Capital One Services, LLC
SPDX-License-Identifier: Apache-2.0
Copyright 2017 Capital One Services, LLC

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

    http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and limitations under the License.

*/

package main

import (
	"github.com/BurntSushi/toml"
	"github.com/pkg/errors"

	"github.com/capitalone/baseconv/internal/log"
	"github.com/capitalone/baseconv/roundtrip"
)

// Config is the optional TOML configuration file. Command-line flags
// override any value it sets.
//
//	[log]
//	level = "debug"
//
//	[roundtrip]
//	from = 1
//	to = 99999
//	bases = [2, 8, 16, 64]
type Config struct {
	Log       log.Config      `toml:"log"`
	RoundTrip RoundTripConfig `toml:"roundtrip"`
}

// RoundTripConfig is the [roundtrip] section of the configuration file.
type RoundTripConfig struct {
	From        uint64 `toml:"from"`
	To          uint64 `toml:"to"`
	SourceBase  int    `toml:"source_base"`
	Bases       []int  `toml:"bases"`
	Workers     int    `toml:"workers"`
	MaxFailures int    `toml:"max_failures"`
}

func defaultConfig() Config {
	return Config{
		Log: log.Config{Level: log.DefaultLevel},
		RoundTrip: RoundTripConfig{
			From:       roundtrip.DefaultFrom,
			To:         roundtrip.DefaultTo,
			SourceBase: roundtrip.DefaultSourceBase,
			Bases:      append([]int(nil), roundtrip.DefaultBases...),
		},
	}
}

// loadConfig returns the defaults overlaid with the file at path, if any.
func loadConfig(path string) (Config, error) {
	cfg := defaultConfig()
	if path == "" {
		return cfg, nil
	}
	md, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		return cfg, errors.Wrapf(err, "load config %s", path)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		return cfg, errors.Errorf("load config %s: unknown key %s", path, undecoded[0])
	}
	return cfg, nil
}

func (c RoundTripConfig) verifierConfig() roundtrip.Config {
	return roundtrip.Config{
		From:        c.From,
		To:          c.To,
		SourceBase:  c.SourceBase,
		Bases:       c.Bases,
		Workers:     c.Workers,
		MaxFailures: c.MaxFailures,
	}
}
