package main

const (
	starting = "starting"
	finished = "finished"

	failedToAppendCertToPool = "failed-to-append-cert-to-pool"
	failedToCreatePermClient = "failed-to-create-perm-client"
)
