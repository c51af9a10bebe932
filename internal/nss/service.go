package nss

import (
	"context"

	"github.com/seafloor/grouper/internal/group"
	"github.com/seafloor/grouper/internal/resolve"
)

// Service implements the host-facing operations over one group database.
//
// It owns the single process-wide enumerator; point lookups are
// stateless and safely concurrent with enumeration and with each other.
type Service struct {
	res  *resolve.Resolver
	enum *resolve.Enumerator
}

// NewService returns a service over the database at path. Nothing is
// opened until the first call needs it.
func NewService(path string) *Service {
	return &Service{
		res:  resolve.New(path),
		enum: resolve.NewEnumerator(path),
	}
}

// OpenEnumeration readies the shared enumeration cursor.
func (s *Service) OpenEnumeration(ctx context.Context) Status {
	return statusOf(s.enum.Open(ctx))
}

// NextEntry returns the next group of the shared enumeration, packing it
// into buf. On StatusOutOfRange the same record is re-delivered by the
// next call; on StatusNotFound the set is exhausted.
func (s *Service) NextEntry(ctx context.Context, buf []byte) (group.Group, Status) {
	g, err := s.enum.Next(ctx, buf)
	return g, statusOf(err)
}

// CloseEnumeration releases the shared enumeration cursor.
func (s *Service) CloseEnumeration() Status {
	return statusOf(s.enum.Close())
}

// LookupByName resolves one group by name into buf.
func (s *Service) LookupByName(ctx context.Context, name string, buf []byte) (group.Group, Status) {
	g, err := s.res.LookupByName(ctx, name, buf)
	return g, statusOf(err)
}

// LookupByID resolves one group by gid into buf.
func (s *Service) LookupByID(ctx context.Context, gid uint32, buf []byte) (group.Group, Status) {
	g, err := s.res.LookupByID(ctx, gid, buf)
	return g, statusOf(err)
}

// MaterializeMembership collects the supplementary gids of user into b,
// excluding the primary gid. Entries before start are another backend's
// and are preserved untouched, as is everything already collected when
// the ceiling cuts a run short.
func (s *Service) MaterializeMembership(ctx context.Context, user string, primary uint32, b *resolve.GIDBuf, start int) Status {
	return statusOf(s.res.MaterializeMembership(ctx, user, primary, b, start))
}
