// cmd/client/main.go
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"log/slog"
	"os"
	"time"

	pb "imagegen-dispatch/proto"

	otelgrpc "go.opentelemetry.io/contrib/instrumentation/google.golang.org/grpc/otelgrpc"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"
)

func main() {
	addr := flag.String("addr", "localhost:50051", "gRPC server address")
	timeout := flag.Duration("timeout", 5*time.Minute, "overall call timeout")
	health := flag.Bool("health", false, "query server health and exit")
	statusOf := flag.String("status", "", "query the status of a job id and exit")

	prompt := flag.String("prompt", "", "text prompt")
	negative := flag.String("negative", "", "negative prompt")
	steps := flag.Int("steps", 0, "inference steps (server default if unset)")
	guidance := flag.Float64("guidance", 0, "guidance scale (server default if unset)")
	width := flag.Int("width", 0, "image width (server default if unset)")
	height := flag.Int("height", 0, "image height (server default if unset)")
	seed := flag.Int64("seed", 0, "random seed (server picks one if unset)")
	out := flag.String("out", "output.png", "where to write the first image")
	flag.Parse()

	logger := slog.New(slog.NewTextHandler(os.Stderr, nil))

	conn, err := grpc.NewClient(*addr,
		grpc.WithTransportCredentials(insecure.NewCredentials()),
		grpc.WithStatsHandler(otelgrpc.NewClientHandler()),
		grpc.WithDefaultCallOptions(grpc.MaxCallRecvMsgSize(64<<20)),
	)
	if err != nil {
		log.Fatalf("failed to connect to %s: %v", *addr, err)
	}
	defer conn.Close()
	client := pb.NewImageGenServiceClient(conn)

	ctx, cancel := context.WithTimeout(context.Background(), *timeout)
	defer cancel()

	switch {
	case *health:
		resp, err := client.HealthCheck(ctx, &pb.HealthCheckRequest{})
		if err != nil {
			log.Fatalf("health check failed: %v", err)
		}
		fmt.Printf("status=%s model_loaded=%t queue=%d/%d workers=%d\n",
			resp.Status, resp.ModelLoaded, resp.QueueLength, resp.QueueCapacity, resp.ActiveWorkers)
		return
	case *statusOf != "":
		resp, err := client.GetJobStatus(ctx, &pb.JobStatusRequest{JobId: *statusOf})
		if err != nil {
			log.Fatalf("status query failed: %v", err)
		}
		fmt.Printf("%s %s\n", resp.JobId, resp.Status)
		return
	}

	if *prompt == "" {
		log.Fatal("-prompt is required")
	}

	// Only flags given on the command line are sent; the rest take server
	// defaults.
	req := &pb.GenerateImageRequest{Prompt: *prompt, NegativePrompt: *negative}
	flag.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "steps":
			v := int32(*steps)
			req.NumInferenceSteps = &v
		case "guidance":
			req.GuidanceScale = guidance
		case "width":
			v := int32(*width)
			req.Width = &v
		case "height":
			v := int32(*height)
			req.Height = &v
		case "seed":
			req.Seed = seed
		}
	})

	start := time.Now()
	resp, err := client.GenerateImage(ctx, req)
	if err != nil {
		log.Fatalf("generation failed: %v", err)
	}
	if len(resp.Images) == 0 {
		log.Fatal("server returned no images")
	}
	if err := os.WriteFile(*out, resp.Images[0], 0o644); err != nil {
		log.Fatalf("failed to write %s: %v", *out, err)
	}

	attrs := []any{"job_id", resp.JobId, "file", *out, "round_trip", time.Since(start)}
	if md := resp.Metadata; md != nil {
		attrs = append(attrs, "seed", md.Seed, "steps", md.ActualSteps, "model", md.ModelUsed,
			"generation_seconds", md.GenerationTimeSeconds)
	}
	logger.Info("image saved", attrs...)
}
