package codegen

import (
	"fmt"
	"path/filepath"

	"google.golang.org/protobuf/proto"
	"google.golang.org/protobuf/types/descriptorpb"

	"protostage/pkg/errors"
)

// readDescriptorSet decodes the FileDescriptorSet protoc wrote alongside
// the generated sources and reports the services declared in each entry
// file. An entry without services still generated message types, so an
// empty service list is not an error.
func (g *ProtocGenerator) readDescriptorSet(path string, entryFiles []string) ([]EntryReport, error) {
	data, err := g.platform.ReadFile(path)
	if err != nil {
		return nil, errors.WrapGenerateError("", "descriptor", err)
	}

	var set descriptorpb.FileDescriptorSet
	if err := proto.Unmarshal(data, &set); err != nil {
		return nil, errors.WrapGenerateError("", "descriptor",
			fmt.Errorf("decoding descriptor set: %w", err))
	}

	servicesByFile := make(map[string][]string, len(set.GetFile()))
	for _, fd := range set.GetFile() {
		names := make([]string, 0, len(fd.GetService()))
		for _, svc := range fd.GetService() {
			names = append(names, svc.GetName())
		}
		servicesByFile[fd.GetName()] = names
	}

	reports := make([]EntryReport, 0, len(entryFiles))
	for _, entry := range entryFiles {
		// Descriptor file names use forward slashes regardless of platform.
		reports = append(reports, EntryReport{
			File:     entry,
			Services: servicesByFile[filepath.ToSlash(entry)],
		})
	}
	return reports, nil
}
