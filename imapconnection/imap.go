// SPDX-License-Identifier: GPL-3.0-or-later
package imapconnection

import (
	"errors"
	"fmt"
	"io"

	"github.com/jberkel/imap-dedup/domain"
	"github.com/jberkel/imap-dedup/mail"

	"github.com/emersion/go-imap"
	"github.com/emersion/go-imap-move"
	"github.com/emersion/go-imap-uidplus"
	"github.com/emersion/go-imap/client"
	"github.com/sirupsen/logrus"
)

// ImapConnection is one authenticated session. It is not safe for concurrent use.
type ImapConnection struct {
	connection    *client.Client
	uidplusClient *uidplus.Client
	mailDeleter   deleter
	quarantiner   quarantiner

	server, user string

	selected  *domain.LabelStatus
	staged    []uint32
	loggedOut bool

	l *logrus.Logger
}

func NewImapConnection(server string, user string, password string, useTLS bool, l *logrus.Logger) (*ImapConnection, error) {
	var imapClient *client.Client
	var err error
	if useTLS {
		imapClient, err = client.DialTLS(server, nil)
	} else {
		imapClient, err = client.Dial(server)
	}
	if err != nil {
		return nil, fmt.Errorf("could not dial to imap: %w", err)
	}

	err = imapClient.Login(user, password)
	if err != nil {
		_ = imapClient.Logout()
		return nil, fmt.Errorf("%w: could not login to imap: %w", domain.ErrAuthentication, err)
	}

	conn, err := newImapConnection(imapClient, server, user, l)
	if err != nil {
		_ = imapClient.Logout()
		return nil, err
	}

	return conn, nil
}

func newImapConnection(imapClient *client.Client, server, user string, l *logrus.Logger) (*ImapConnection, error) {
	uidPlusClient := uidplus.NewClient(imapClient)
	uidPlusSupported, err := uidPlusClient.SupportUidPlus()
	if err != nil {
		return nil, fmt.Errorf("could not check for UIDPLUS support: %w", err)
	}

	moveClient := move.NewClient(imapClient)
	moveSupported, err := moveClient.SupportMove()
	if err != nil {
		return nil, fmt.Errorf("could not check for MOVE support: %w", err)
	}

	conn := &ImapConnection{
		connection:    imapClient,
		uidplusClient: uidPlusClient,
		server:        server,
		user:          user,
		l:             l,
	}

	baseLogger := conn.l.WithFields(logrus.Fields{"server": server, "user": user})
	baseLogger.Debug("Logged in to server")

	if uidPlusSupported {
		baseLogger.Debug("UIDPLUS supported on server, using UID expunge")
		conn.mailDeleter = &uidPlusDeleter{
			imapConn: conn,
		}
	} else {
		baseLogger.Info("UIDPLUS not supported on server, falling back to flag&expunge")
		conn.mailDeleter = &compatibilityDeleter{
			imapConn: conn,
		}
	}

	if moveSupported {
		baseLogger.Debug("MOVE supported on server")
		conn.quarantiner = &moveQuarantiner{
			moveClient: moveClient,
		}
	} else {
		baseLogger.Debug("MOVE not supported on server, quarantine falls back to copy&delete")
		conn.quarantiner = &copyQuarantiner{
			imapConn: conn,
		}
	}

	return conn, nil
}

func (ic *ImapConnection) Select(label string, readOnly bool) (*domain.LabelStatus, error) {
	if len(ic.staged) > 0 {
		ic.l.WithFields(logrus.Fields{"label": ic.selected.Name, "staged": len(ic.staged)}).Warn("Leaving label with unexpunged mails")
		ic.staged = nil
	}

	m, err := ic.connection.Select(label, readOnly)
	if err != nil {
		ic.selected = nil
		return nil, fmt.Errorf("%w: could not select %s: %w", domain.ErrSourceUnavailable, label, err)
	}

	ic.selected = &domain.LabelStatus{
		Name:        label,
		Messages:    m.Messages,
		UidValidity: m.UidValidity,
		ReadOnly:    readOnly || m.ReadOnly,
	}
	ic.l.WithFields(logrus.Fields{"label": label, "messages": m.Messages, "readonly": ic.selected.ReadOnly}).Debug("Selected label")

	status := *ic.selected
	return &status, nil
}

// FetchHeader fetches the uid and identity headers of the message with the given
// sequence number in the selected label.
func (ic *ImapConnection) FetchHeader(seqNum uint32) (*domain.Header, error) {
	if ic.selected == nil {
		return nil, fmt.Errorf("%w: no label selected", domain.ErrSourceUnavailable)
	}

	seqset := &imap.SeqSet{}
	seqset.AddNum(seqNum)
	section := &imap.BodySectionName{
		BodyPartName: imap.BodyPartName{
			Specifier: imap.HeaderSpecifier,
			Fields:    mail.IdentityHeaders,
		},
		Peek: true,
	}
	fetchItems := []imap.FetchItem{imap.FetchUid, section.FetchItem()}

	out := make(chan *imap.Message, 1)
	done := make(chan error, 1)
	go func() {
		done <- ic.connection.Fetch(seqset, fetchItems, out)
	}()

	var fetched *imap.Message
	for msg := range out {
		if fetched == nil {
			fetched = msg
		}
	}

	err := <-done
	if err != nil {
		return nil, fmt.Errorf("%w: could not fetch header %d: %w", domain.ErrProtocol, seqNum, err)
	}

	if fetched == nil {
		return nil, fmt.Errorf("%w: no message with sequence number %d", domain.ErrProtocol, seqNum)
	}
	if fetched.Uid == 0 {
		return nil, fmt.Errorf("%w: no uid for message %d", domain.ErrProtocol, seqNum)
	}

	r := body(fetched, section)
	if r == nil {
		return nil, fmt.Errorf("%w: no headers for message %d", domain.ErrProtocol, seqNum)
	}

	rawHeaders, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("%w: could not read headers of message %d: %w", domain.ErrProtocol, seqNum, err)
	}

	identity, err := mail.ParseIdentity(rawHeaders)
	if err != nil {
		return nil, fmt.Errorf("could not parse headers of message %d: %w", seqNum, err)
	}

	return &domain.Header{
		Uid:      fetched.Uid,
		Identity: *identity,
	}, nil
}

func (ic *ImapConnection) FetchBody(uid uint32) ([]byte, error) {
	if ic.selected == nil {
		return nil, fmt.Errorf("%w: no label selected", domain.ErrSourceUnavailable)
	}

	seqset := &imap.SeqSet{}
	seqset.AddNum(uid)
	fullBodySection := &imap.BodySectionName{
		Peek: true,
	}
	fetchItems := []imap.FetchItem{imap.FetchUid, fullBodySection.FetchItem()}

	out := make(chan *imap.Message, 1)
	done := make(chan error, 1)
	go func() {
		done <- ic.connection.UidFetch(seqset, fetchItems, out)
	}()

	var fetched *imap.Message
	for msg := range out {
		if fetched == nil {
			fetched = msg
		}
	}

	err := <-done
	if err != nil {
		return nil, fmt.Errorf("could not fetch mail %d: %w", uid, err)
	}

	if fetched == nil {
		return nil, fmt.Errorf("%w: no message with uid %d in %s", domain.ErrProtocol, uid, ic.selected.Name)
	}

	r := body(fetched, fullBodySection)
	if r == nil {
		return nil, fmt.Errorf("%w: no body for message %d", domain.ErrProtocol, uid)
	}

	rawMail, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("could not read mail body: %w", err)
	}

	return rawMail, nil
}

// body returns the literal of the requested section. Some servers echo the
// section name differently than requested, the only literal is used then.
func body(msg *imap.Message, section *imap.BodySectionName) imap.Literal {
	if r := msg.GetBody(section); r != nil {
		return r
	}
	for _, literal := range msg.Body {
		return literal
	}
	return nil
}

func (ic *ImapConnection) Search(criteria *imap.SearchCriteria) ([]uint32, error) {
	uids, err := ic.uidSearch(criteria)
	if err != nil {
		return nil, fmt.Errorf("could not search label: %w", err)
	}
	return uids, nil
}

// MarkDeleted flags uid as deleted in the selected label. The flag only takes
// effect with the next Expunge.
func (ic *ImapConnection) MarkDeleted(uid uint32) error {
	if err := ic.writable(); err != nil {
		return fmt.Errorf("cannot mark %d as deleted: %w", uid, err)
	}

	if len(ic.staged) == 0 {
		notDeleteReadyReason, err := ic.mailDeleter.deleteReady()
		if err != nil {
			return fmt.Errorf("could not check for delete readiness: %w", err)
		}

		if notDeleteReadyReason != nil {
			return fmt.Errorf("label %s is not ready for delete: %w", ic.selected.Name, notDeleteReadyReason)
		}
	}

	_, err := ic.flagDeleted([]uint32{uid})
	if err != nil {
		return err
	}

	ic.staged = append(ic.staged, uid)
	return nil
}

// Expunge removes every mail staged by MarkDeleted in the selected label.
func (ic *ImapConnection) Expunge() error {
	if err := ic.writable(); err != nil {
		return fmt.Errorf("cannot expunge: %w", err)
	}

	if len(ic.staged) == 0 {
		return nil
	}

	staged := ic.staged
	ic.staged = nil
	return ic.mailDeleter.expunge(staged)
}

func (ic *ImapConnection) Move(uid uint32, label string) error {
	if err := ic.writable(); err != nil {
		return fmt.Errorf("cannot move %d: %w", uid, err)
	}

	return ic.quarantiner.quarantine(uid, label)
}

func (ic *ImapConnection) writable() error {
	if ic.selected == nil {
		return fmt.Errorf("%w: no label selected", domain.ErrSourceUnavailable)
	}
	if ic.selected.ReadOnly {
		return fmt.Errorf("%w: %s", domain.ErrPermissionDenied, ic.selected.Name)
	}
	return nil
}

// Close logs out. Calling it more than once is a no-op.
func (ic *ImapConnection) Close() error {
	if ic.loggedOut {
		return nil
	}
	ic.loggedOut = true

	err := ic.connection.Logout()
	if err != nil && !errors.Is(err, client.ErrAlreadyLoggedOut) {
		return fmt.Errorf("could not logout: %w", err)
	}

	ic.l.WithFields(logrus.Fields{"server": ic.server}).Debug("Logged out")
	return nil
}

func (ic *ImapConnection) flagDeleted(uids []uint32) (*imap.SeqSet, error) {
	seqset := &imap.SeqSet{}
	seqset.AddNum(uids...)
	err := ic.connection.UidStore(seqset, imap.FormatFlagsOp(imap.AddFlags, true), []interface{}{imap.DeletedFlag}, nil)
	if err != nil {
		return nil, fmt.Errorf("could set delete flag: %w", err)
	}

	return seqset, nil
}

func (ic *ImapConnection) uidExpunge(seqSet *imap.SeqSet, ch chan uint32) error {
	return ic.uidplusClient.UidExpunge(seqSet, ch)
}

func (ic *ImapConnection) expungeAll(ch chan uint32) error {
	return ic.connection.Expunge(ch)
}

func (ic *ImapConnection) uidSearch(criteria *imap.SearchCriteria) ([]uint32, error) {
	return ic.connection.UidSearch(criteria)
}

func (ic *ImapConnection) uidCopy(seqset *imap.SeqSet, dest string) error {
	return ic.connection.UidCopy(seqset, dest)
}

func (ic *ImapConnection) delete(uids []uint32) error {
	return ic.mailDeleter.delete(uids)
}

func (ic *ImapConnection) deleteReady() (error, error) {
	return ic.mailDeleter.deleteReady()
}

func (ic *ImapConnection) expunge(uids []uint32) error {
	return ic.mailDeleter.expunge(uids)
}
