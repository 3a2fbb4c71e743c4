package oracle

// ReceiptPrompt instructs the vision model to extract every transaction on a
// receipt image as labeled plain text, one blank line between transactions.
// The wording is Indonesian because the receipts and the users are.
const ReceiptPrompt = `Ambil informasi transaksi keuangan dari gambar struk ini. Fokus pada apa yang dibayar sebagai satu transaksi utuh, dan gunakan jumlah total yang benar-benar dibayar (setelah diskon, pengiriman, layanan, pengemasan, dll).

Tampilkan hasil dalam format teks berikut:
Deskripsi: <deskripsi menu/barang utama>
Jumlah: Rp<total yang dibayar, pakai titik sebagai pemisah ribuan>
Kategori: <kategori barang/jasa>
Tanggal: <tanggal transaksi dalam format "13 Apr 2025", atau "-" jika tidak ada>

Setiap transaksi harus ditampilkan lengkap dengan deskripsi, jumlah, kategori, dan tanggal.
Pisahkan setiap transaksi dengan satu baris kosong.
Jangan tambahkan teks lain di luar format di atas.`

// BatchLinePrompt structures one colloquial expense line into the same
// labeled format. The model expands numeric shorthand (rb/k = ribu,
// jt = juta) into full Rupiah digits so the extractor only ever sees the
// delimited form.
const BatchLinePrompt = `Ubah catatan pengeluaran berikut menjadi format terstruktur.
Angka singkat wajib dijabarkan: "rb" atau "k" berarti ribu (15rb = Rp15.000), "jt" berarti juta (1,5jt = Rp1.500.000).

Tampilkan hasil persis dalam format:
Deskripsi: <deskripsi singkat>
Jumlah: Rp<jumlah, pakai titik sebagai pemisah ribuan>
Kategori: <kategori pengeluaran>
Tanggal: <tanggal dalam format "13 Apr 2025", atau "-" jika tidak disebut>

Jangan tambahkan teks lain.

Catatan: `
