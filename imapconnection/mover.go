// SPDX-License-Identifier: GPL-3.0-or-later
package imapconnection

//go:generate mockgen -destination=mover_mocks_test.go -package=imapconnection -source mover.go
import (
	"fmt"

	"github.com/emersion/go-imap"
)

type moveClient interface {
	UidMove(seqset *imap.SeqSet, dest string) error
}

// moveQuarantiner moves a duplicate with a single MOVE command.
type moveQuarantiner struct {
	moveClient moveClient
}

func (m *moveQuarantiner) quarantine(uid uint32, label string) error {
	seqset := &imap.SeqSet{}
	seqset.AddNum(uid)
	err := m.moveClient.UidMove(seqset, label)
	if err != nil {
		return fmt.Errorf("could not move %d to %s: %w", uid, label, err)
	}
	return nil
}

// copyQuarantiner copies the duplicate and deletes the original afterwards,
// which needs the same readiness as a plain delete.
type copyQuarantiner struct {
	imapConn copyAndDeleteClient
}

func (c *copyQuarantiner) quarantine(uid uint32, label string) error {
	notDeleteReadyReason, err := c.imapConn.deleteReady()
	if err != nil {
		return fmt.Errorf("could not check for delete readiness to move: %w", err)
	}

	if notDeleteReadyReason != nil {
		return fmt.Errorf("folder is not ready for delete, cannot move (copy&delete): %w", notDeleteReadyReason)
	}

	seqset := &imap.SeqSet{}
	seqset.AddNum(uid)
	err = c.imapConn.uidCopy(seqset, label)
	if err != nil {
		return fmt.Errorf("could not copy %d to %s: %w", uid, label, err)
	}

	err = c.imapConn.delete([]uint32{uid})
	if err != nil {
		return fmt.Errorf("could not delete copied mail: %w", err)
	}

	return nil
}
