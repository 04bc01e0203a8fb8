// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package cliparse handles command-line argument parsing and configuration.

# Configuration

ParseFlags returns a Config struct with all settings:

	cfg, err := cliparse.ParseFlags(os.Args[1:])

# Config Fields

  - Port: Server listen port (default: 3319)
  - AllowedOrigin: CORS origin allowed to call the API (default: echo the requester)
  - SessionTTL: how long an idle raffle session survives before the reaper
    drops it (default: 2h; 0 disables reaping)
  - LogLevel: slog level (default: info)

# CLI Flags

	-p          Server port
	-origin     Allowed CORS origin
	-ttl        Idle session lifetime, as a Go duration ("30m", "2h")
	-log-level  debug, info, warn or error

# Environment Variables

Flags fall back to environment variables:

	PORT           → -p
	ALLOWED_ORIGIN → -origin
	SESSION_TTL    → -ttl
	LOG_LEVEL      → -log-level

CLI flags take precedence over environment variables. Nothing is required;
every setting has a usable default, since the server keeps no secrets and
talks to no database.
*/
package cliparse
