package main

import (
	"context"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"runtime"
	"strings"

	"github.com/spf13/cobra"
)

var (
	initName        string
	initEnvironment string
)

// initCmd creates a project and links the working directory to it
var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Create a new project and link this directory",
	Long: `Creates a project on the platform and writes .skylift/project.json
so later commands know which project this directory belongs to.

The project name defaults to the directory name.`,
	RunE: runInit,
}

// linkCmd links the working directory to an existing project
var linkCmd = &cobra.Command{
	Use:   "link <project-id>",
	Short: "Link this directory to an existing project",
	Args:  cobra.ExactArgs(1),
	RunE:  runLink,
}

// statusCmd shows the project aggregate
var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show project status: deployments, plugins, domains",
	RunE:  runStatus,
}

// domainCmd prints (minting on first use) the project's public domain
var domainCmd = &cobra.Command{
	Use:   "domain",
	Short: "Generate or print the project's public domain",
	RunE:  runDomain,
}

// openCmd opens the project's domain in the browser
var openCmd = &cobra.Command{
	Use:   "open",
	Short: "Open the project's domain in the browser",
	RunE:  runOpen,
}

func init() {
	initCmd.Flags().StringVar(&initName, "name", "", "Project name (default: directory name)")
	initCmd.Flags().StringVar(&initEnvironment, "environment", "", "Environment: development or production")
}

func runInit(cmd *cobra.Command, args []string) error {
	ctx := context.Background()
	client, err := requireClient()
	if err != nil {
		return err
	}

	wd, err := os.Getwd()
	if err != nil {
		return err
	}

	if link, err := loadLink(wd); err == nil {
		return fmt.Errorf("directory already linked to project %s (%s)", link.Name, link.ProjectID)
	}

	name := initName
	if name == "" {
		name = filepath.Base(wd)
	}

	p, err := client.CreateProject(ctx, name, initEnvironment)
	if err != nil {
		return fmt.Errorf("failed to create project: %w", err)
	}

	if err := saveLink(wd, projectLink{ProjectID: p.ID, Name: p.Name}); err != nil {
		return err
	}

	fmt.Printf("Created project %s (%s)\n", p.Name, p.ID)
	fmt.Println("\nNext steps:")
	fmt.Println("  skylift add --plugin postgresql   # attach a database")
	fmt.Println("  skylift variables set --from-file .env")
	fmt.Println("  skylift up                        # deploy")
	return nil
}

func runLink(cmd *cobra.Command, args []string) error {
	ctx := context.Background()
	client, err := requireClient()
	if err != nil {
		return err
	}

	p, err := client.GetProject(ctx, args[0])
	if err != nil {
		return fmt.Errorf("failed to look up project: %w", err)
	}

	wd, err := os.Getwd()
	if err != nil {
		return err
	}
	if err := saveLink(wd, projectLink{ProjectID: p.ID, Name: p.Name}); err != nil {
		return err
	}

	fmt.Printf("Linked to project %s (%s)\n", p.Name, p.ID)
	return nil
}

func runStatus(cmd *cobra.Command, args []string) error {
	ctx := context.Background()
	client, err := requireClient()
	if err != nil {
		return err
	}
	projectID, err := resolveProjectID()
	if err != nil {
		return err
	}

	st, err := client.ProjectStatus(ctx, projectID)
	if err != nil {
		return err
	}

	fmt.Printf("Project:     %s (%s)\n", st.Project.Name, st.Project.ID)
	fmt.Printf("Environment: %s\n", st.Project.Environment)

	if st.ActiveDeployment != nil {
		fmt.Printf("Active:      %s [%s]\n", st.ActiveDeployment.ID, st.ActiveDeployment.Status)
	} else {
		fmt.Println("Active:      none")
	}
	if st.LatestDeployment != nil && (st.ActiveDeployment == nil || st.LatestDeployment.ID != st.ActiveDeployment.ID) {
		line := fmt.Sprintf("Latest:      %s [%s]", st.LatestDeployment.ID, st.LatestDeployment.Status)
		if st.LatestDeployment.FailedStep != "" {
			line += fmt.Sprintf(" (failed at %s)", st.LatestDeployment.FailedStep)
		}
		fmt.Println(line)
	}

	fmt.Printf("\nPlugins (%d):\n", len(st.Plugins))
	for _, pl := range st.Plugins {
		fmt.Printf("  %-11s %-8s -> %s\n", pl.Kind, pl.Status, pl.Variable)
	}
	if len(st.Plugins) == 0 {
		fmt.Println("  none")
	}

	fmt.Printf("\nDomains (%d):\n", len(st.Domains))
	for _, d := range st.Domains {
		fmt.Printf("  %-40s %-9s %s\n", d.Hostname, d.Kind, d.Status)
	}
	if len(st.Domains) == 0 {
		fmt.Println("  none — run 'skylift domain' to generate one")
	}
	return nil
}

func runDomain(cmd *cobra.Command, args []string) error {
	ctx := context.Background()
	client, err := requireClient()
	if err != nil {
		return err
	}
	projectID, err := resolveProjectID()
	if err != nil {
		return err
	}

	d, err := client.GenerateDomain(ctx, projectID)
	if err != nil {
		return err
	}

	fmt.Printf("https://%s\n", d.Hostname)
	return nil
}

func runOpen(cmd *cobra.Command, args []string) error {
	ctx := context.Background()
	client, err := requireClient()
	if err != nil {
		return err
	}
	projectID, err := resolveProjectID()
	if err != nil {
		return err
	}

	doms, err := client.ListDomains(ctx, projectID)
	if err != nil {
		return err
	}

	var hostname string
	for _, d := range doms {
		if d.Status == "active" {
			hostname = d.Hostname
			break
		}
	}
	if hostname == "" {
		return fmt.Errorf("no active domain. Run 'skylift domain' to generate one")
	}

	target := "https://" + hostname
	fmt.Printf("Opening %s\n", target)
	return browse(target)
}

// browse opens url in the default browser.
func browse(url string) error {
	var cmd *exec.Cmd
	switch runtime.GOOS {
	case "darwin":
		cmd = exec.Command("open", url)
	case "windows":
		cmd = exec.Command("rundll32", "url.dll,FileProtocolHandler", url)
	default:
		cmd = exec.Command("xdg-open", url)
	}
	if err := cmd.Start(); err != nil {
		return fmt.Errorf("failed to open browser (%s): %w", strings.Join(cmd.Args, " "), err)
	}
	return nil
}
