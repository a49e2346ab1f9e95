package main

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"skylift/pkg/apiclient"
)

var (
	upDetach   bool
	logsFollow bool
	logsTail   int
)

// upCmd packs the working directory and deploys it
var upCmd = &cobra.Command{
	Use:   "up",
	Short: "Deploy the current directory",
	Long: `Packs the working directory into a tar.gz archive (honoring
.skyliftignore), uploads it, and streams build logs until the
deployment goes live. With --detach the command returns as soon as
the deployment is queued.`,
	RunE: runUp,
}

// logsCmd tails or follows deployment logs
var logsCmd = &cobra.Command{
	Use:   "logs",
	Short: "Show deployment logs",
	Long: `Prints the persisted log tail of the latest deployment.

  skylift logs --tail 200   # more history
  skylift logs --follow     # live stream over WebSocket`,
	RunE: runLogs,
}

func init() {
	upCmd.Flags().BoolVar(&upDetach, "detach", false, "Return immediately instead of streaming build logs")
	logsCmd.Flags().BoolVar(&logsFollow, "follow", false, "Stream new lines as they arrive")
	logsCmd.Flags().IntVar(&logsTail, "tail", 0, "Number of lines to show (server default: 100)")
}

func runUp(cmd *cobra.Command, args []string) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	client, err := requireClient()
	if err != nil {
		return err
	}
	projectID, err := resolveProjectID()
	if err != nil {
		return err
	}

	wd, err := os.Getwd()
	if err != nil {
		return err
	}

	fmt.Println("Packing source...")
	var buf bytes.Buffer
	files, err := packSource(wd, &buf)
	if err != nil {
		return err
	}
	fmt.Printf("Uploading %d files (%.1f KiB)...\n", files, float64(buf.Len())/1024)

	d, err := client.Up(ctx, projectID, &buf)
	if err != nil {
		return fmt.Errorf("deploy failed: %w", err)
	}
	fmt.Printf("Deployment %s queued\n", d.ID)

	if upDetach {
		fmt.Printf("Detached. Check progress with 'skylift logs' or 'skylift status'.\n")
		return nil
	}

	if err := followDeployment(ctx, client, projectID, d.ID); err != nil {
		return err
	}

	final, err := client.GetDeployment(ctx, projectID, d.ID)
	if err != nil {
		return err
	}
	switch final.Status {
	case "active":
		fmt.Println("Deployment is live.")
		return nil
	case "queued", "building", "deploying":
		// Interrupted mid-stream; the pipeline keeps going.
		fmt.Printf("Deployment still %s. Check progress with 'skylift status'.\n", final.Status)
		return nil
	default:
		if final.FailedStep != "" {
			return fmt.Errorf("deployment %s at step %q", final.Status, final.FailedStep)
		}
		return fmt.Errorf("deployment %s", final.Status)
	}
}

func runLogs(cmd *cobra.Command, args []string) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	client, err := requireClient()
	if err != nil {
		return err
	}
	projectID, err := resolveProjectID()
	if err != nil {
		return err
	}

	out, err := client.Logs(ctx, projectID, "", logsTail)
	if err != nil {
		return err
	}
	for _, ln := range out.Lines {
		printLogLine(ln)
	}

	if !logsFollow {
		return nil
	}
	if apiclient.DeploymentStatusTerminal(out.Deployment.Status) {
		fmt.Printf("-- deployment %s is %s, nothing to follow --\n", out.Deployment.ID, out.Deployment.Status)
		return nil
	}
	return followDeployment(ctx, client, projectID, out.Deployment.ID)
}

// followDeployment streams live lines until the deployment finishes or
// ctx is cancelled.
func followDeployment(ctx context.Context, client *apiclient.Client, projectID, deploymentID string) error {
	lines, cancel, err := client.FollowLogs(ctx, projectID, deploymentID)
	if err != nil {
		return err
	}
	defer cancel()

	for {
		select {
		case <-ctx.Done():
			return nil
		case ln, ok := <-lines:
			if !ok {
				return nil
			}
			printLogLine(ln)
		}
	}
}

func printLogLine(ln apiclient.LogLine) {
	fmt.Printf("%s [%s] %s\n", ln.Timestamp.Local().Format("15:04:05"), ln.Stream, ln.Message)
}
