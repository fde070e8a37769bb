package main

import "errors"

var ErrMigrationsOutOfSync = errors.New("migrations out of sync: run `projectperm migrate` first")
