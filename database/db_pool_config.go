// Copyright (C) 2025 Phoenix Security Collective
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as
// published by the Free Software Foundation, either version 3 of the
// License, or (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU Affero General Public License for more details.
//
// You should have received a copy of the GNU Affero General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

package database

import (
	"os"
	"strconv"
	"time"
)

type PoolConfig struct {
	Host     string
	User     string
	Password string
	DBName   string
	Port     string

	MaxOpenConns    int32
	MinConns        int32
	ConnMaxLifetime time.Duration
	ConnMaxIdleTime time.Duration
}

// PoolConfigFromEnv reads the POSTGRES_* variables. Pool sizing has sane
// defaults, the connection parameters are required.
func PoolConfigFromEnv() PoolConfig {
	return PoolConfig{
		Host:     os.Getenv("POSTGRES_HOST"),
		User:     os.Getenv("POSTGRES_USER"),
		Password: os.Getenv("POSTGRES_PASSWORD"),
		DBName:   os.Getenv("POSTGRES_DB"),
		Port:     envOrDefault("POSTGRES_PORT", "5432"),

		MaxOpenConns:    int32(envIntOrDefault("POSTGRES_MAX_OPEN_CONNS", 20)),
		MinConns:        int32(envIntOrDefault("POSTGRES_MIN_CONNS", 2)),
		ConnMaxLifetime: time.Duration(envIntOrDefault("POSTGRES_CONN_MAX_LIFETIME_MINUTES", 30)) * time.Minute,
		ConnMaxIdleTime: time.Duration(envIntOrDefault("POSTGRES_CONN_MAX_IDLE_MINUTES", 5)) * time.Minute,
	}
}

func envOrDefault(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func envIntOrDefault(key string, def int) int {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	i, err := strconv.Atoi(v)
	if err != nil {
		return def
	}
	return i
}
