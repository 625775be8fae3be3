package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

const configExample = `# protostage.yml
version: "1"

staging:
  # Directory holding the .proto sources. A missing source dir is not an
  # error: staging becomes a no-op and generation runs against whatever
  # the proto dir already holds.
  source_dir: ../src/main/protobuf
  # Build-local directory the sources are copied into.
  proto_dir: proto
  extension: .proto

generator:
  # Resolved from PATH when empty.
  protoc_path: ""
  # Entry-point schemas, relative to the proto dir.
  entry_files:
    - hello.proto
  # Extra include paths for cross-file imports. The proto dir is always
  # included first.
  include_paths: []
  output_dir: gen
  # protoc-gen-go-grpc emits client and server surfaces together, so
  # either flag being set enables the gRPC plugin. Both unset generates
  # message types only.
  build_server: true
  build_client: true

logging:
  level: info   # debug shows skipped files and the protoc command line
  format: text  # or json
`

// NewHelpConfigCmd creates the config-help command.
func NewHelpConfigCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "config-help",
		Short: "Show a configuration file example",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Print(configExample)
		},
	}
}
