// SPDX-License-Identifier: GPL-3.0-or-later
package imapconnection

import (
	"errors"
	"testing"

	"github.com/emersion/go-imap"
	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
)

func TestMoveQuarantiner_Quarantine(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	conn := NewMockmoveClient(ctrl)
	quarantiner := moveQuarantiner{conn}

	seqset := &imap.SeqSet{}
	seqset.AddNum(u32(42))
	conn.EXPECT().
		UidMove(gomock.Eq(seqset), gomock.Eq("Duplicates")).
		Return(nil)

	err := quarantiner.quarantine(42, "Duplicates")
	assert.NoError(t, err)
}

func TestMoveQuarantiner_QuarantineFails(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	conn := NewMockmoveClient(ctrl)
	quarantiner := moveQuarantiner{conn}

	conn.EXPECT().
		UidMove(gomock.Any(), gomock.Eq("Duplicates")).
		Return(errors.New("NO [TRYCREATE] no such mailbox"))

	err := quarantiner.quarantine(42, "Duplicates")
	assert.EqualError(t, err, "could not move 42 to Duplicates: NO [TRYCREATE] no such mailbox")
}

func TestCopyQuarantiner_Quarantine(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	conn := NewMockcopyAndDeleteClient(ctrl)
	quarantiner := copyQuarantiner{conn}

	conn.EXPECT().
		deleteReady().
		Return(nil, nil)

	seqset := &imap.SeqSet{}
	seqset.AddNum(u32(42))
	conn.EXPECT().
		uidCopy(gomock.Eq(seqset), "Duplicates").
		Return(nil)

	conn.EXPECT().
		delete(u32a(42)).
		Return(nil)

	err := quarantiner.quarantine(42, "Duplicates")
	assert.NoError(t, err)
}

func TestCopyQuarantiner_QuarantineButNotReady(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	conn := NewMockcopyAndDeleteClient(ctrl)
	quarantiner := copyQuarantiner{conn}

	conn.EXPECT().
		deleteReady().
		Return(errors.New("delete not ready"), nil)

	err := quarantiner.quarantine(42, "Duplicates")
	assert.EqualError(t, err, "folder is not ready for delete, cannot move (copy&delete): delete not ready")
}

func TestCopyQuarantiner_CopyFails(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	conn := NewMockcopyAndDeleteClient(ctrl)
	quarantiner := copyQuarantiner{conn}

	conn.EXPECT().
		deleteReady().
		Return(nil, nil)

	conn.EXPECT().
		uidCopy(gomock.Any(), "Duplicates").
		Return(errors.New("quota exceeded"))

	err := quarantiner.quarantine(42, "Duplicates")
	assert.EqualError(t, err, "could not copy 42 to Duplicates: quota exceeded")
}
