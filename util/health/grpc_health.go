package health

import (
	"context"
	"fmt"
	"net/http"

	"google.golang.org/grpc"
	"google.golang.org/grpc/connectivity"
)

// CheckGRPCConnection reports the connectivity state of a long-lived client connection.
// Liveness never fails on a backend problem, readiness fails while the connection is
// in TRANSIENT_FAILURE or has been shut down.
func CheckGRPCConnection(name string, conn *grpc.ClientConn) CheckFunc {
	return func(_ context.Context, checkLiveness bool) (int, string, error) {
		if checkLiveness {
			return http.StatusOK, "OK", nil
		}

		if conn == nil {
			return http.StatusServiceUnavailable, fmt.Sprintf("%s connection not initialised", name), nil
		}

		state := conn.GetState()

		switch state {
		case connectivity.TransientFailure, connectivity.Shutdown:
			return http.StatusServiceUnavailable, fmt.Sprintf("%s connection is %s", name, state), nil
		case connectivity.Idle:
			// an idle connection only dials on the next call
			conn.Connect()
		}

		return http.StatusOK, fmt.Sprintf("%s connection is %s", name, state), nil
	}
}
