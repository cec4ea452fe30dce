package client

import (
	"errors"
	"fmt"

	"github.com/dmitrijs2005/vivault/internal/common"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// remoteError keeps vaultd's message while matching a local sentinel.
type remoteError struct {
	sentinel error
	msg      string
}

func (e *remoteError) Error() string { return e.msg }
func (e *remoteError) Unwrap() error { return e.sentinel }

func remote(sentinel error, msg string) error {
	if msg == "" {
		msg = sentinel.Error()
	}
	return &remoteError{sentinel: sentinel, msg: msg}
}

// mapError converts a gRPC status into the vault sentinels.
func mapError(err error) error {
	if err == nil {
		return nil
	}
	st, ok := status.FromError(err)
	if !ok {
		if errors.Is(err, common.ErrTransport) {
			return err
		}
		return fmt.Errorf("%w: %v", common.ErrTransport, err)
	}
	switch st.Code() {
	case codes.Unauthenticated:
		if st.Message() == common.ErrAuthentication.Error() {
			return common.ErrAuthentication
		}
		return remote(common.ErrInvalidToken, "caller token rejected: "+st.Message())
	case codes.FailedPrecondition:
		return common.ErrVaultLocked
	case codes.NotFound:
		return remote(common.ErrNotFound, st.Message())
	case codes.DataLoss:
		return common.ErrDecryption
	case codes.InvalidArgument:
		return remote(common.ErrValidation, st.Message())
	case codes.Unavailable, codes.DeadlineExceeded:
		return remote(common.ErrTransport, "vaultd unavailable: "+st.Message())
	default:
		return remote(common.ErrInternal, st.Message())
	}
}
