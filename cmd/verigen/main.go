// Command verigen compiles a master verification test specification into
// the artifacts a compliance test run consumes: endpoint-keyed test-case
// documents and the matching service definitions, plus a fail-fast
// consistency gate over both.
package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"github.com/alecthomas/kong"

	"github.com/verigen/verigen"
	"github.com/verigen/verigen/check"
	"github.com/verigen/verigen/gen"
	"github.com/verigen/verigen/sink"
	"github.com/verigen/verigen/spec"
)

type CLI struct {
	Version     VersionCmd     `cmd:"" help:"Print version information."`
	ServerAPI   ServerAPICmd   `cmd:"" name:"server-api" help:"Generate the server-direction service definitions."`
	ClientAPI   ClientAPICmd   `cmd:"" name:"client-api" help:"Generate the client-direction service definitions."`
	ServerCases ServerCasesCmd `cmd:"" name:"server-cases" help:"Compile the test cases consumed by the verification server."`
	ClientCases ClientCasesCmd `cmd:"" name:"client-cases" help:"Compile the test cases consumed by the verification client."`
	Verify      VerifyCmd      `cmd:"" help:"Check that compiled test cases and service definitions agree."`
}

type VersionCmd struct{}

func (c *VersionCmd) Run() error {
	fmt.Println(Version())
	return nil
}

type ServerAPICmd struct {
	In  string `arg:"" help:"Master test-cases YAML file."`
	Out string `arg:"" help:"Output directory for service definitions (wiped each run)."`
}

func (c *ServerAPICmd) Run() error {
	all, err := spec.Load(c.In)
	if err != nil {
		return err
	}
	files, err := gen.ServerServices(all, gen.Options{})
	if err != nil {
		return err
	}
	return writeServiceFiles(c.Out, files)
}

type ClientAPICmd struct {
	In  string `arg:"" help:"Master test-cases YAML file."`
	Out string `arg:"" help:"Output directory for service definitions (wiped each run)."`
}

func (c *ClientAPICmd) Run() error {
	all, err := spec.Load(c.In)
	if err != nil {
		return err
	}
	files, err := gen.ClientServices(all, gen.Options{})
	if err != nil {
		return err
	}
	return writeServiceFiles(c.Out, files)
}

type ServerCasesCmd struct {
	In  string `arg:"" help:"Master test-cases YAML file."`
	Out string `arg:"" help:"Output directory for compiled test cases (wiped each run)."`
}

func (c *ServerCasesCmd) Run() error {
	all, err := spec.Load(c.In)
	if err != nil {
		return err
	}
	tc, err := gen.CompileServerTestCases(all, gen.Options{})
	if err != nil {
		return err
	}
	return writeTestCases(c.Out, tc)
}

type ClientCasesCmd struct {
	In  string `arg:"" help:"Master test-cases YAML file."`
	Out string `arg:"" help:"Output directory for compiled test cases (wiped each run)."`
}

func (c *ClientCasesCmd) Run() error {
	all, err := spec.Load(c.In)
	if err != nil {
		return err
	}
	tc, err := gen.CompileClientTestCases(all, gen.Options{})
	if err != nil {
		return err
	}
	return writeTestCases(c.Out, tc)
}

type VerifyCmd struct {
	In        string `arg:"" help:"Master test-cases YAML file."`
	Dir       string `arg:"" help:"Directory containing generated service definition documents."`
	Direction string `help:"Artifact direction to verify." default:"server" enum:"server,client"`
}

func (c *VerifyCmd) Run() error {
	all, err := spec.Load(c.In)
	if err != nil {
		return err
	}
	docs, err := loadServiceDocuments(c.Dir)
	if err != nil {
		return err
	}

	var tc *verigen.TestCases
	switch c.Direction {
	case "server":
		tc, err = gen.CompileServerTestCases(all, gen.Options{})
		if err != nil {
			return err
		}
		err = check.ServerArtifacts(tc.Client, docs)
	case "client":
		tc, err = gen.CompileClientTestCases(all, gen.Options{})
		if err != nil {
			return err
		}
		err = check.ClientArtifacts(tc.Server, docs)
	}
	if err != nil {
		return err
	}

	endpoints := 0
	for _, doc := range docs {
		for _, svc := range doc.Services {
			endpoints += len(svc.Endpoints)
		}
	}
	fmt.Printf("✓ %d documents, %d endpoints, %d test cases\n", len(docs), endpoints, tc.Count())
	fmt.Println("✓ Endpoint paths embed their names")
	fmt.Println("✓ Test cases and service definitions agree")
	return nil
}

// writeServiceFiles wipes the output directory and writes each service
// document, then prints a summary.
func writeServiceFiles(out string, files []gen.ServiceFile) error {
	ctx := context.Background()
	fsink := sink.NewFilesystemSink(out)
	if err := fsink.Clean(ctx); err != nil {
		return err
	}
	for _, f := range files {
		if err := sink.WriteYAML(ctx, fsink, f.Filename, f.Document); err != nil {
			return err
		}
		fmt.Printf("✓ %s\n", f.Filename)
	}
	return nil
}

// writeTestCases wipes the output directory and writes the compiled
// document in both serialization forms.
func writeTestCases(out string, tc *verigen.TestCases) error {
	ctx := context.Background()
	fsink := sink.NewFilesystemSink(out)
	if err := fsink.Clean(ctx); err != nil {
		return err
	}
	if err := sink.WriteYAML(ctx, fsink, "test-cases.yml", tc); err != nil {
		return err
	}
	if err := sink.WriteJSON(ctx, fsink, "test-cases.json", tc); err != nil {
		return err
	}
	fmt.Printf("✓ %d test cases\n", tc.Count())
	return nil
}

// loadServiceDocuments reads every .yml document in dir, strictly.
func loadServiceDocuments(dir string) ([]verigen.ServiceDocument, error) {
	matches, err := filepath.Glob(filepath.Join(dir, "*.yml"))
	if err != nil {
		return nil, err
	}
	if len(matches) == 0 {
		return nil, fmt.Errorf("no service definition documents found in %s", dir)
	}
	sort.Strings(matches)

	docs := make([]verigen.ServiceDocument, 0, len(matches))
	for _, path := range matches {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("read service document: %w", err)
		}
		doc, err := verigen.DecodeServiceDocument(data)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", path, err)
		}
		docs = append(docs, *doc)
	}
	return docs, nil
}

func main() {
	cli := &CLI{}
	ctx := kong.Parse(cli,
		kong.Name("verigen"),
		kong.Description("Compiler and consistency gate for verification test artifacts."),
		kong.UsageOnError(),
	)
	err := ctx.Run()
	ctx.FatalIfErrorf(err)
}
