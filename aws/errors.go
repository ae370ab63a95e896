package aws

import (
	"context"
	"errors"
	"net"

	"github.com/aws/smithy-go"
	"github.com/entigolabs/entigo-flow-agent/model"
)

var errorCodeKinds = map[string]model.ErrorKind{
	"AccessDeniedException":         model.ErrorKindAuth,
	"AccessDenied":                  model.ErrorKindAuth,
	"UnrecognizedClientException":   model.ErrorKindAuth,
	"InvalidClientTokenId":          model.ErrorKindAuth,
	"ExpiredToken":                  model.ErrorKindAuth,
	"ExpiredTokenException":         model.ErrorKindAuth,
	"InvalidSignatureException":     model.ErrorKindAuth,
	"ThrottlingException":           model.ErrorKindThrottling,
	"Throttling":                    model.ErrorKindThrottling,
	"TooManyRequestsException":      model.ErrorKindThrottling,
	"ServiceQuotaExceededException": model.ErrorKindThrottling,
	"ValidationException":           model.ErrorKindValidation,
	"ValidationError":               model.ErrorKindValidation,
	"ResourceNotFoundException":     model.ErrorKindNotFound,
	"NoSuchEntity":                  model.ErrorKindNotFound,
	"NoSuchKey":                     model.ErrorKindNotFound,
	"NoSuchBucket":                  model.ErrorKindNotFound,
	"ConflictException":             model.ErrorKindConflict,
}

func classify(op string, err error) error {
	if err == nil {
		return nil
	}
	return model.NewRemoteError(op, errorKind(err), err)
}

func errorKind(err error) model.ErrorKind {
	if errors.Is(err, context.DeadlineExceeded) {
		return model.ErrorKindTimeout
	}
	var apiErr smithy.APIError
	if errors.As(err, &apiErr) {
		if kind, found := errorCodeKinds[apiErr.ErrorCode()]; found {
			return kind
		}
		return model.ErrorKindUnknown
	}
	var netErr net.Error
	if errors.As(err, &netErr) {
		if netErr.Timeout() {
			return model.ErrorKindTimeout
		}
		return model.ErrorKindNetwork
	}
	var canceledErr *smithy.CanceledError
	if errors.As(err, &canceledErr) {
		return model.ErrorKindTimeout
	}
	return model.ErrorKindUnknown
}
