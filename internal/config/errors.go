package config

import "errors"

var errNegativeWorkers = errors.New("config: evaluation.workers must be >= 0")
