// SPDX-License-Identifier: GPL-3.0-or-later
package mail

import (
	"bufio"
	"bytes"
	"crypto/md5"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/jberkel/imap-dedup/domain"

	_ "github.com/emersion/go-message/charset"
	gomail "github.com/emersion/go-message/mail"
	"github.com/emersion/go-message/textproto"
)

// Headers written by SMS Backup+ for every backed up item.
const (
	HeaderAddress = "X-smssync-address"
	HeaderType    = "X-smssync-type"
	HeaderDate    = "X-smssync-date"
)

// IdentityHeaders are the only header fields fetched while scanning.
var IdentityHeaders = []string{
	strings.ToUpper(HeaderAddress),
	strings.ToUpper(HeaderType),
	strings.ToUpper(HeaderDate),
}

func ParseIdentity(rawHeaders []byte) (*domain.MessageIdentity, error) {
	header, err := textproto.ReadHeader(bufio.NewReader(bytes.NewReader(rawHeaders)))
	if err != nil {
		return nil, fmt.Errorf("%w: could not parse headers: %w", domain.ErrProtocol, err)
	}

	date, err := intHeader(&header, HeaderDate)
	if err != nil {
		return nil, err
	}

	kind, err := intHeader(&header, HeaderType)
	if err != nil {
		return nil, err
	}

	if !header.Has(HeaderAddress) {
		return nil, fmt.Errorf("%w: %s header not found", domain.ErrProtocol, HeaderAddress)
	}

	address, err := rawValue(&header, HeaderAddress)
	if err != nil {
		return nil, err
	}

	return &domain.MessageIdentity{
		Timestamp: date,
		Kind:      int(kind),
		Address:   address,
	}, nil
}

// rawValue returns the value of key as delivered. Only the whitespace after the
// colon and the final line break are removed, trailing blanks and folded
// continuation lines are kept since they are part of the fingerprint.
func rawValue(header *textproto.Header, key string) (string, error) {
	raw, err := header.Raw(key)
	if err != nil {
		return "", fmt.Errorf("%w: could not read %s header: %w", domain.ErrProtocol, key, err)
	}

	_, value, found := strings.Cut(string(raw), ":")
	if !found {
		return "", fmt.Errorf("%w: malformed %s header", domain.ErrProtocol, key)
	}

	value = strings.TrimLeft(value, " \t")
	return strings.TrimRight(value, "\r\n"), nil
}

func intHeader(header *textproto.Header, key string) (int64, error) {
	if !header.Has(key) {
		return 0, fmt.Errorf("%w: %s header not found", domain.ErrProtocol, key)
	}

	value, err := strconv.ParseInt(header.Get(key), 10, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: %s header is not numeric: %w", domain.ErrProtocol, key, err)
	}

	return value, nil
}

// Fingerprint digests timestamp, address and kind in exactly this order. The
// scheme has to match identities computed by other SMS Backup+ tooling, so the
// message body is left out and md5 collisions count as the same message.
func Fingerprint(identity domain.MessageIdentity) domain.Fingerprint {
	d := md5.New()
	d.Write([]byte(strconv.FormatInt(identity.Timestamp, 10)))
	d.Write([]byte(identity.Address))
	d.Write([]byte(strconv.Itoa(identity.Kind)))

	return domain.Fingerprint(fmt.Sprintf("%x", d.Sum(nil)))
}

type Summary struct {
	Subject string
	From    string
	Date    time.Time
}

func Summarize(rawMail []byte) (*Summary, error) {
	mr, err := gomail.CreateReader(bytes.NewReader(rawMail))
	if err != nil {
		return nil, fmt.Errorf("could not parse mail: %w", err)
	}
	defer mr.Close()

	subject, err := mr.Header.Subject()
	if err != nil {
		return nil, fmt.Errorf("could not decode subject header: %w", err)
	}

	from := []string{}
	addresses, err := mr.Header.AddressList("From")
	if err != nil {
		// SMS Backup+ writes numbers that are not always valid addresses
		from = append(from, mr.Header.Get("From"))
	}
	for _, a := range addresses {
		if len(a.Name) > 0 {
			from = append(from, fmt.Sprintf("%s <%s>", a.Name, a.Address))
		} else {
			from = append(from, a.Address)
		}
	}

	date, err := mr.Header.Date()
	if err != nil {
		return nil, fmt.Errorf("could not parse date header: %w", err)
	}

	return &Summary{
		Subject: subject,
		From:    strings.Join(from, ", "),
		Date:    date,
	}, nil
}

func ShortSubject(subject string) string {
	if (len(subject)) > 30 {
		subject = subject[:30] + "..."
	}
	return subject
}
