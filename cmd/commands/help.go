package commands

import "fmt"

const help = `memes - meme posts backed by postgres and minio

usage:
  memes run <config.yml>                 start the HTTP server
  memes migrate <config.yml>             create or update the database schema
  memes orphans <config.yml> [since]     list orphaned images recorded in the ledger
                                         (since is an RFC3339 timestamp)
  memes events <config.yml> [consumer]   print meme events from the broker stream
  memes version                          print the version
  memes help                             print this message
`

func HandleHelp(_ []string) {
	fmt.Print(help) //nolint
}
