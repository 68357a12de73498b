package main

import (
	"errors"
	"fmt"
	"io"
	"strconv"

	"go.uber.org/zap"

	"github.com/Faultbox/g3dexport/internal/config"
	"github.com/Faultbox/g3dexport/internal/logger"
	"github.com/Faultbox/g3dexport/internal/vertexfile"
)

var errUsage = errors.New("usage")

func usageError(usage string) error {
	return fmt.Errorf("%w: vertextool %s", errUsage, usage)
}

func loadDocument(args []string, usage string) (*vertexfile.Document, error) {
	if len(args) < 1 {
		return nil, usageError(usage)
	}
	doc, err := vertexfile.Load(args[0])
	if err != nil {
		return nil, err
	}
	logger.Debug("loaded vertex document",
		zap.String("path", args[0]),
		zap.Int("vertices", len(doc.Vertices)))
	return doc, nil
}

func writeDocument(out io.Writer, doc *vertexfile.Document) error {
	data, err := doc.Encode()
	if err != nil {
		return err
	}
	_, err = out.Write(data)
	return err
}

func cmdInfo(out io.Writer, args []string) error {
	doc, err := loadDocument(args, "info <file.yaml>")
	if err != nil {
		return err
	}

	s := summarize(doc.Vertices)
	fmt.Fprintf(out, "Vertices:      %d\n", s.Total)
	fmt.Fprintf(out, "Unique:        %d\n", s.Unique)
	fmt.Fprintf(out, "Tangents:      %d\n", s.WithTangent)
	fmt.Fprintf(out, "Binormals:     %d\n", s.WithBinormal)
	fmt.Fprintf(out, "Colors unset:  %d\n", s.UnsetColor)
	fmt.Fprintf(out, "UV channels:   %d max\n", s.MaxUVChannels)
	fmt.Fprintf(out, "Skinned:       %d\n", s.Skinned)
	fmt.Fprintf(out, "Zero weights:  %d\n", s.ZeroWeightSum)
	if len(doc.Indices) > 0 {
		fmt.Fprintf(out, "Indices:       %d\n", len(doc.Indices))
	}
	return nil
}

func cmdNormalize(out io.Writer, args []string) error {
	doc, err := loadDocument(args, "normalize <file.yaml>")
	if err != nil {
		return err
	}
	normalizeAll(doc)
	return writeDocument(out, doc)
}

func cmdDedupe(out io.Writer, args []string) error {
	doc, err := loadDocument(args, "dedupe <file.yaml>")
	if err != nil {
		return err
	}
	return writeDocument(out, dedupe(doc))
}

func cmdProcess(out io.Writer, cfg *config.Config, args []string) error {
	doc, err := loadDocument(args, "process <file.yaml>")
	if err != nil {
		return err
	}
	return writeDocument(out, process(doc, cfg.Process))
}

func cmdCompare(out io.Writer, args []string) error {
	const usage = "compare <file.yaml> <i> <j>"
	if len(args) < 3 {
		return usageError(usage)
	}
	doc, err := loadDocument(args, usage)
	if err != nil {
		return err
	}

	idx := make([]int, 2)
	for k, s := range args[1:3] {
		n, err := strconv.Atoi(s)
		if err != nil {
			return fmt.Errorf("invalid vertex index %q: %w", s, err)
		}
		if n < 0 || n >= len(doc.Vertices) {
			return fmt.Errorf("vertex index %d out of range [0, %d)", n, len(doc.Vertices))
		}
		idx[k] = n
	}

	if doc.Vertices[idx[0]].Compare(doc.Vertices[idx[1]]) {
		fmt.Fprintf(out, "vertex %d == vertex %d\n", idx[0], idx[1])
	} else {
		fmt.Fprintf(out, "vertex %d != vertex %d\n", idx[0], idx[1])
	}
	return nil
}

func cmdInitConfig(out io.Writer, cfg *config.Config, args []string) error {
	if len(args) > 0 {
		if err := cfg.SaveTo(args[0]); err != nil {
			return err
		}
		fmt.Fprintf(out, "Wrote %s\n", args[0])
		return nil
	}
	if err := cfg.Save(); err != nil {
		return err
	}
	fmt.Fprintf(out, "Wrote config to %s\n", config.ConfigDir())
	return nil
}
