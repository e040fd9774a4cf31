// Package websocket - websocket/metrics.go
// file: websocket/metrics.go

package websocket

import (
	"os"
	"time"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/aws/session"
	"github.com/aws/aws-sdk-go/service/cloudwatch"

	"stream-music-portal/logger"
)

// Namespace for all portal metrics
var metricsNamespace = "StreamMusicPortal"

// Reuse a single CloudWatch client for all metrics calls
var cwClient = cloudwatch.New(session.Must(session.NewSession()))

// metricsEnabled gates CloudWatch publishing; local runs leave it off.
var metricsEnabled = os.Getenv("ENABLE_CLOUDWATCH_METRICS") == "true"

// PublishClientConnections pushes the current WebSocket connection count.
func PublishClientConnections(count int, audience string) {
	putMetric("ClientConnections", float64(count), "Count", audience)
}

// PublishToastVolume pushes a counter for toasts broadcast to an audience.
func PublishToastVolume(count int, audience string) {
	putMetric("ToastsBroadcast", float64(count), "Count", audience)
}

// PublishBroadcastBacklog pushes a gauge for broadcast queue depth.
func PublishBroadcastBacklog(depth int, audience string) {
	putMetric("BroadcastQueueDepth", float64(depth), "Count", audience)
}

// -----------------------------------------------------------
// internal helper function to package up CloudWatch calls
// -----------------------------------------------------------
func putMetric(metricName string, value float64, unit string, audience string) {
	if !metricsEnabled {
		return
	}
	_, err := cwClient.PutMetricData(&cloudwatch.PutMetricDataInput{
		Namespace: aws.String(metricsNamespace),
		MetricData: []*cloudwatch.MetricDatum{
			{
				MetricName: aws.String(metricName),
				Dimensions: []*cloudwatch.Dimension{
					{
						Name:  aws.String("Audience"),
						Value: aws.String(audience),
					},
				},
				Timestamp: aws.Time(time.Now()),
				Value:     aws.Float64(value),
				Unit:      aws.String(unit),
			},
		},
	})

	if err != nil {
		logger.Error.Printf("[putMetric] CloudWatch metric failed (%s): %v", metricName, err)
	}
}
