package errorx

import "net/http"

type Code int

const (
	// NotFound covers missing users, tweets, likes, and follows.
	NotFound Code = iota + 1

	// MediaNotFound is raised when a tweet references media rows that do not
	// exist. The wire representation differs from NotFound for historical
	// reasons.
	MediaNotFound

	// LikeTargetNotFound is raised when liking a tweet that does not exist.
	// It keeps the 404 status but the ValueError wire string, for historical
	// reasons.
	LikeTargetNotFound

	// ValueError covers rejected values such as self-follow and self-like.
	ValueError

	// Conflict covers storage constraint violations (duplicate like,
	// dangling foreign key).
	Conflict

	// Validation covers malformed request shapes and parameters.
	Validation

	// UnsupportedMedia is raised when an uploaded file is not an image.
	UnsupportedMedia

	// Internal is everything unexpected.
	Internal
)

func (c Code) String() string {
	switch c {
	case NotFound:
		return "not_found"
	case MediaNotFound:
		return "media_not_found"
	case LikeTargetNotFound:
		return "like_target_not_found"
	case ValueError:
		return "value_error"
	case Conflict:
		return "conflict"
	case Validation:
		return "validation"
	case UnsupportedMedia:
		return "unsupported_media"
	default:
		return "internal"
	}
}

// HTTPStatus maps a code to the status the client receives.
func (c Code) HTTPStatus() int {
	switch c {
	case NotFound, MediaNotFound, LikeTargetNotFound:
		return http.StatusNotFound
	case ValueError, Conflict:
		return http.StatusBadRequest
	case Validation:
		return http.StatusUnprocessableEntity
	case UnsupportedMedia:
		return http.StatusUnsupportedMediaType
	default:
		return http.StatusInternalServerError
	}
}

// ErrorType maps a code to the error_type string of the error envelope.
func (c Code) ErrorType() string {
	switch c {
	case NotFound:
		return "NoResultFound"
	case MediaNotFound:
		return "No Result Found Error"
	case LikeTargetNotFound, ValueError:
		return "ValueError"
	case Conflict:
		return "IntegrityError"
	case Validation:
		return "RequestValidationError"
	case UnsupportedMedia:
		return "TypeError"
	default:
		return "Internal Server Error"
	}
}
