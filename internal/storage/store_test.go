package storage_test

import (
	"os"
	"path/filepath"
	"strings"

	"nsslens/internal/storage"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("Store", func() {
	var (
		dir   string
		store *storage.Store
	)

	BeforeEach(func() {
		var err error
		dir, err = os.MkdirTemp("", "uploads")
		Expect(err).NotTo(HaveOccurred())

		store, err = storage.NewStore(dir)
		Expect(err).NotTo(HaveOccurred())
	})

	AfterEach(func() {
		Expect(os.RemoveAll(dir)).To(Succeed())
	})

	Describe("NewStore", func() {
		It("should create the upload directory when missing", func() {
			nested := filepath.Join(dir, "a", "b")
			_, err := storage.NewStore(nested)
			Expect(err).NotTo(HaveOccurred())
			Expect(nested).To(BeADirectory())
		})
	})

	Describe("Save", func() {
		It("should write the content under the sanitized name", func() {
			stored, err := store.Save("my photo.png", strings.NewReader("image-bytes"))
			Expect(err).NotTo(HaveOccurred())
			Expect(stored).To(Equal("my_photo.png"))

			content, err := os.ReadFile(filepath.Join(dir, stored))
			Expect(err).NotTo(HaveOccurred())
			Expect(string(content)).To(Equal("image-bytes"))
		})

		It("should overwrite an existing file with the same name", func() {
			_, err := store.Save("photo.png", strings.NewReader("first"))
			Expect(err).NotTo(HaveOccurred())
			_, err = store.Save("photo.png", strings.NewReader("second"))
			Expect(err).NotTo(HaveOccurred())

			content, err := os.ReadFile(filepath.Join(dir, "photo.png"))
			Expect(err).NotTo(HaveOccurred())
			Expect(string(content)).To(Equal("second"))
		})

		It("should reject names that sanitize to nothing", func() {
			_, err := store.Save("...", strings.NewReader("x"))
			Expect(err).To(MatchError(storage.ErrEmptyFilename))

			entries, err := os.ReadDir(dir)
			Expect(err).NotTo(HaveOccurred())
			Expect(entries).To(BeEmpty())
		})
	})

	Describe("Remove", func() {
		It("should delete a stored file", func() {
			stored, err := store.Save("photo.jpg", strings.NewReader("bytes"))
			Expect(err).NotTo(HaveOccurred())

			Expect(store.Remove(stored)).To(Succeed())
			Expect(filepath.Join(dir, stored)).NotTo(BeAnExistingFile())
		})

		It("should return an error for a missing file", func() {
			Expect(store.Remove("nope.png")).To(MatchError(ContainSubstring("remove file")))
		})
	})

	DescribeTable("SanitizeFilename",
		func(input, expected string) {
			Expect(storage.SanitizeFilename(input)).To(Equal(expected))
		},
		Entry("plain name", "photo.png", "photo.png"),
		Entry("spaces become underscores", "my summer photo.jpg", "my_summer_photo.jpg"),
		Entry("path traversal stripped", "../../etc/passwd", "passwd"),
		Entry("windows path stripped", `C:\Users\me\shot.jpeg`, "shot.jpeg"),
		Entry("unsafe characters dropped", "we@ird#na(me).png", "weirdname.png"),
		Entry("leading dots trimmed", ".hidden.png", "hidden.png"),
		Entry("only dots", "...", ""),
	)
})
